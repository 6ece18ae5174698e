package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for Markdown conversion.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// ValidateHighlightStyle checks that name is registered with chroma.
// An empty name is valid and selects DefaultHighlightStyle.
func ValidateHighlightStyle(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}
	return nil
}

// HighlightStyleNames returns the registered chroma style names, sorted.
func HighlightStyleNames() []string {
	return styles.Names()
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// syntax highlighting in the given chroma style. Highlighting uses inline
// styles so the output page needs no extra stylesheet.
func NewGoldmarkConverter(highlightStyle string) (*GoldmarkConverter, error) {
	if err := ValidateHighlightStyle(highlightStyle); err != nil {
		return nil, err
	}
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,            // Tables, strikethrough, autolinks, task lists
			extension.Footnote,       // [^1] footnotes
			extension.DefinitionList, // Term\n: definition
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
					chromahtml.TabWidth(4),
				),
			),
		),
		goldmark.WithRendererOptions(
			// Keep inline HTML such as <details> or <kbd> from local sources.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}, nil
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
