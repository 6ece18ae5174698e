package offlinedocs

import (
	"slices"
	"strings"
)

// AnchorID derives the element id and fragment target for a document url:
// strip a leading "/en/", replace every "/" with "-", then strip a single
// leading "." and a single trailing "-".
//
//	"/en/getting-started.md" -> "getting-started.md"
//	"/guides/setup/"         -> "-guides-setup"
func AnchorID(url string) string {
	id := strings.TrimPrefix(url, "/en/")
	id = strings.ReplaceAll(id, "/", "-")
	id = strings.TrimPrefix(id, ".")
	id = strings.TrimSuffix(id, "-")
	return id
}

// FindAnchorCollisions returns every anchor id shared by more than one
// distinct url among embedded documents, mapped to those urls in manifest
// order. External documents are ignored since they produce no element.
func FindAnchorCollisions(m *Manifest) map[string][]string {
	seen := make(map[string][]string)
	for _, section := range m.Sections {
		for _, doc := range section.Documents {
			if doc.IsExternal() {
				continue
			}
			id := AnchorID(doc.URL)
			urls := seen[id]
			if !slices.Contains(urls, doc.URL) {
				seen[id] = append(urls, doc.URL)
			}
		}
	}

	collisions := make(map[string][]string)
	for id, urls := range seen {
		if len(urls) > 1 {
			collisions[id] = urls
		}
	}
	return collisions
}
