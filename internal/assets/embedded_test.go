package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  []string
	}{
		{
			name:         "loads default template",
			templateName: DefaultTemplateName,
			wantContain:  []string{SidebarPlaceholder, ContentPlaceholder, "<style>"},
		},
		{
			name:         "loads plain template",
			templateName: "plain",
			wantContain:  []string{SidebarPlaceholder, ContentPlaceholder},
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../default",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("LoadTemplate(%q) missing %q", tt.templateName, want)
				}
			}
		})
	}
}

func TestEmbeddedLoader_BuiltinTemplatesAreValid(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	names := loader.TemplateNames()
	if !slices.Contains(names, DefaultTemplateName) {
		t.Fatalf("TemplateNames() = %v, want it to include %q", names, DefaultTemplateName)
	}

	for _, name := range names {
		raw, err := loader.LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", name, err)
		}
		if _, err := NewPageTemplate(raw); err != nil {
			t.Errorf("built-in template %q is invalid: %v", name, err)
		}
	}
}
