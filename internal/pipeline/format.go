package pipeline

import (
	"regexp"
	"strings"
)

// Format names reported by the default rules.
const (
	FormatMarkdown    = "markdown"
	FormatHTML        = "html"
	FormatPassthrough = "passthrough"
)

// markdownHeading matches any line that starts with "#" followed by whitespace.
var markdownHeading = regexp.MustCompile(`(?m)^#\s`)

// FormatRule pairs a detection predicate with a converter.
// Rules are evaluated in order and the first match wins.
type FormatRule struct {
	Name    string
	Match   func(url, content string) bool
	Convert func(content string) (string, error)
}

// DefaultFormatRules returns the built-in detection chain:
//  1. url ends with .md: Markdown
//  2. url ends with .html: inner <body> markup, or content unchanged without a body
//  3. any line is a Markdown ATX heading: Markdown
//  4. anything else: content unchanged
func DefaultFormatRules(md HTMLConverter) []FormatRule {
	return []FormatRule{
		{
			Name: FormatMarkdown,
			Match: func(url, _ string) bool {
				return strings.HasSuffix(url, ".md")
			},
			Convert: md.ToHTML,
		},
		{
			Name: FormatHTML,
			Match: func(url, _ string) bool {
				return strings.HasSuffix(url, ".html")
			},
			Convert: func(content string) (string, error) {
				inner, _, err := ExtractBody(content)
				return inner, err
			},
		},
		{
			Name: FormatMarkdown,
			Match: func(_, content string) bool {
				return LooksLikeMarkdown(content)
			},
			Convert: md.ToHTML,
		},
		PassthroughRule(),
	}
}

// PassthroughRule matches everything and returns content unchanged.
func PassthroughRule() FormatRule {
	return FormatRule{
		Name:    FormatPassthrough,
		Match:   func(string, string) bool { return true },
		Convert: func(content string) (string, error) { return content, nil },
	}
}

// LooksLikeMarkdown reports whether content contains a Markdown ATX heading.
func LooksLikeMarkdown(content string) bool {
	return markdownHeading.MatchString(content)
}

// ApplyFormatRules converts content with the first rule matching url and content.
// When no rule matches, content is passed through unchanged.
func ApplyFormatRules(rules []FormatRule, url, content string) (format, out string, err error) {
	for _, rule := range rules {
		if rule.Match == nil || rule.Convert == nil {
			continue
		}
		if !rule.Match(url, content) {
			continue
		}
		out, err = rule.Convert(content)
		return rule.Name, out, err
	}
	return FormatPassthrough, content, nil
}
