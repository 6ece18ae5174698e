package pipeline

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkRewriter rewrites relative references inside a document fragment so
// they keep working once the fragment is embedded in a single page.
//
// Rewrites:
//   - a[href] pointing at another manifest document: same-page "#anchor" link
//   - img[src] and other a[href]: absolute file:// URL
//
// Left alone: URLs, anchors, absolute paths, and references that resolve
// outside RootDir.
type LinkRewriter struct {
	// RootDir is the documentation base directory.
	RootDir string
	// Anchors maps root-relative slash paths ("guides/setup.md") to anchor ids.
	Anchors map[string]string
}

// DocumentKey normalizes a manifest url into the key format used by Anchors.
func DocumentKey(u string) string {
	return path.Clean(strings.TrimPrefix(u, "/"))
}

// Rewrite rewrites references in fragment relative to the document at docURL.
func (r *LinkRewriter) Rewrite(fragment, docURL string) (string, error) {
	if r.RootDir == "" || strings.TrimSpace(fragment) == "" {
		return fragment, nil
	}

	absRoot, err := filepath.Abs(r.RootDir)
	if err != nil {
		return "", err
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	})
	if err != nil {
		return "", err
	}

	docDir := path.Dir(DocumentKey(docURL))
	for _, n := range nodes {
		r.rewriteNode(n, absRoot, docDir)
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode traverses the tree and rewrites img[src] and a[href].
func (r *LinkRewriter) rewriteNode(n *html.Node, absRoot, docDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			r.rewriteAttr(n, "src", absRoot, docDir, false)
		case atom.A:
			r.rewriteAttr(n, "href", absRoot, docDir, true)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.rewriteNode(c, absRoot, docDir)
	}
}

func (r *LinkRewriter) rewriteAttr(n *html.Node, attrName, absRoot, docDir string, allowAnchor bool) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		ref, fragment, _ := strings.Cut(attr.Val, "#")
		key := path.Clean(path.Join(docDir, ref))
		if key == ".." || strings.HasPrefix(key, "../") {
			continue
		}

		if allowAnchor {
			if anchor, ok := r.Anchors[key]; ok {
				n.Attr[i].Val = "#" + anchor
				continue
			}
		}

		target := pathToFileURL(filepath.Join(absRoot, filepath.FromSlash(key)))
		if fragment != "" {
			target += "#" + fragment
		}
		n.Attr[i].Val = target
	}
}

// isRelativePath returns true if the reference should be rewritten.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	lower := strings.ToLower(p)
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	return !strings.HasPrefix(p, "/") && !filepath.IsAbs(p)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
