package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-offlinedocs/internal/yamlutil"
)

type testManifest struct {
	Docs []struct {
		Title string `yaml:"title"`
	} `yaml:"docs"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []byte
		dest      any
		wantErr   error
		wantErrIn string
		check     func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("docs:\n  - title: Intro\n  - title: Guides\n"),
			dest: &testManifest{},
			check: func(t *testing.T, v any) {
				m := v.(*testManifest)
				if len(m.Docs) != 2 {
					t.Fatalf("len(Docs) = %d, want 2", len(m.Docs))
				}
				if m.Docs[1].Title != "Guides" {
					t.Errorf("Docs[1].Title = %q, want %q", m.Docs[1].Title, "Guides")
				}
			},
		},
		{
			name: "JSON input",
			data: []byte(`{"docs": [{"title": "Intro"}]}`),
			dest: &testManifest{},
			check: func(t *testing.T, v any) {
				m := v.(*testManifest)
				if len(m.Docs) != 1 || m.Docs[0].Title != "Intro" {
					t.Errorf("Docs = %+v, want one section titled Intro", m.Docs)
				}
			},
		},
		{
			name: "unknown fields ignored",
			data: []byte("docs: []\nextra: true\n"),
			dest: &testManifest{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testManifest{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testManifest{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("docs: []"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:      "invalid YAML syntax",
			data:      []byte("docs: [unclosed"),
			dest:      &testManifest{},
			wantErrIn: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.wantErrIn != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrIn) {
					t.Fatalf("Unmarshal() error = %v, want containing %q", err, tt.wantErrIn)
				}
				return
			case err != nil:
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}

			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("docs: \"" + strings.Repeat("x", yamlutil.MaxInputSize) + "\"")
	err := yamlutil.Unmarshal(data, &testManifest{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields decode", func(t *testing.T) {
		t.Parallel()

		var m testManifest
		if err := yamlutil.UnmarshalStrict([]byte("docs:\n  - title: A\n"), &m); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if len(m.Docs) != 1 {
			t.Errorf("len(Docs) = %d, want 1", len(m.Docs))
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var m testManifest
		err := yamlutil.UnmarshalStrict([]byte("docs: []\nunknown: 1\n"), &m)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
		if !strings.Contains(err.Error(), "yamlutil:") {
			t.Errorf("error = %v, want yamlutil prefix", err)
		}
	})
}
