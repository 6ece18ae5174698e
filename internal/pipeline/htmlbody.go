package pipeline

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractBody returns the inner markup of the <body> element in content.
// The parser synthesizes a body for any input, so the raw token stream is
// checked first: when content carries no <body> start tag, it is returned
// unchanged with found set to false.
func ExtractBody(content string) (inner string, found bool, err error) {
	hasBody, err := hasBodyTag(content)
	if err != nil {
		return "", false, err
	}
	if !hasBody {
		return content, false, nil
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", false, err
	}

	body := findElement(doc, atom.Body)
	if body == nil {
		return content, false, nil
	}

	var buf strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", false, err
		}
	}
	return buf.String(), true, nil
}

// hasBodyTag scans tokens for an explicit <body> start tag.
func hasBodyTag(content string) (bool, error) {
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return false, nil
			}
			return false, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Body {
				return true, nil
			}
		}
	}
}

// findElement returns the first element node with the given atom, depth first.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
