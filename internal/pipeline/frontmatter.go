package pipeline

import "regexp"

// frontMatterPattern matches a leading block opened by a line of exactly
// "---" and closed by the next line of exactly "---" plus its newline.
// The block may be empty.
var frontMatterPattern = regexp.MustCompile(`(?s)\A---\r?\n(?:.*?\r?\n)?---\r?\n`)

// StripFrontMatter removes a leading front matter block from content.
// Content without one is returned unchanged.
func StripFrontMatter(content string) string {
	loc := frontMatterPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[loc[1]:]
}

// HasFrontMatter reports whether content starts with a front matter block.
func HasFrontMatter(content string) bool {
	return frontMatterPattern.MatchString(content)
}
