package pipeline

import (
	"errors"
	"strings"
	"testing"
)

// stubConverter records calls and wraps content in a marker.
type stubConverter struct {
	err error
}

func (s *stubConverter) ToHTML(content string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "<md>" + content + "</md>", nil
}

func TestApplyFormatRules_DefaultChain(t *testing.T) {
	t.Parallel()

	rules := DefaultFormatRules(&stubConverter{})

	tests := []struct {
		name       string
		url        string
		content    string
		wantFormat string
		want       string
	}{
		{
			name:       "md extension",
			url:        "/en/intro.md",
			content:    "plain text",
			wantFormat: FormatMarkdown,
			want:       "<md>plain text</md>",
		},
		{
			name:       "md extension wins over html content",
			url:        "page.md",
			content:    "<html><body>x</body></html>",
			wantFormat: FormatMarkdown,
			want:       "<md><html><body>x</body></html></md>",
		},
		{
			name:       "html extension extracts body",
			url:        "page.html",
			content:    "<html><body><p>x</p></body></html>",
			wantFormat: FormatHTML,
			want:       "<p>x</p>",
		},
		{
			name:       "html extension without body passes through",
			url:        "page.html",
			content:    "<p>no body</p>",
			wantFormat: FormatHTML,
			want:       "<p>no body</p>",
		},
		{
			name:       "html extension with heading content stays html",
			url:        "page.html",
			content:    "# not markdown",
			wantFormat: FormatHTML,
			want:       "# not markdown",
		},
		{
			name:       "no extension with heading",
			url:        "README",
			content:    "intro\n# Section\ntext",
			wantFormat: FormatMarkdown,
			want:       "<md>intro\n# Section\ntext</md>",
		},
		{
			name:       "hash without whitespace is not a heading",
			url:        "notes.txt",
			content:    "#hashtag\n<p>x</p>",
			wantFormat: FormatPassthrough,
			want:       "#hashtag\n<p>x</p>",
		},
		{
			name:       "only single hash headings are detected",
			url:        "notes",
			content:    "## Section",
			wantFormat: FormatPassthrough,
			want:       "## Section",
		},
		{
			name:       "indented hash is not a heading",
			url:        "notes",
			content:    "  # indented",
			wantFormat: FormatPassthrough,
			want:       "  # indented",
		},
		{
			name:       "no extension no heading",
			url:        "fragment",
			content:    "<div>pre-formatted</div>",
			wantFormat: FormatPassthrough,
			want:       "<div>pre-formatted</div>",
		},
		{
			name:       "extension match is case sensitive",
			url:        "PAGE.MD",
			content:    "text",
			wantFormat: FormatPassthrough,
			want:       "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format, got, err := ApplyFormatRules(rules, tt.url, tt.content)
			if err != nil {
				t.Fatalf("ApplyFormatRules() error = %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyFormatRules_CustomRuleFirst(t *testing.T) {
	t.Parallel()

	custom := FormatRule{
		Name:  "text",
		Match: func(url, _ string) bool { return strings.HasSuffix(url, ".txt") },
		Convert: func(content string) (string, error) {
			return "<pre>" + content + "</pre>", nil
		},
	}
	rules := append([]FormatRule{custom}, DefaultFormatRules(&stubConverter{})...)

	format, got, err := ApplyFormatRules(rules, "notes.txt", "# heading")
	if err != nil {
		t.Fatalf("ApplyFormatRules() error = %v", err)
	}
	if format != "text" || got != "<pre># heading</pre>" {
		t.Errorf("ApplyFormatRules() = (%q, %q), want (text, <pre># heading</pre>)", format, got)
	}
}

func TestApplyFormatRules_ConverterError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	rules := DefaultFormatRules(&stubConverter{err: sentinel})

	_, _, err := ApplyFormatRules(rules, "page.md", "# x")
	if !errors.Is(err, sentinel) {
		t.Errorf("ApplyFormatRules() error = %v, want %v", err, sentinel)
	}
}

func TestApplyFormatRules_NoRules(t *testing.T) {
	t.Parallel()

	format, got, err := ApplyFormatRules(nil, "page.md", "content")
	if err != nil {
		t.Fatalf("ApplyFormatRules() error = %v", err)
	}
	if format != FormatPassthrough || got != "content" {
		t.Errorf("ApplyFormatRules() = (%q, %q), want passthrough of content", format, got)
	}
}
