package offlinedocs

import (
	"fmt"
	"os"

	"github.com/alnah/go-offlinedocs/internal/fileutil"
	"github.com/alnah/go-offlinedocs/internal/yamlutil"
)

// Manifest is the ordered list of sections driving generation.
type Manifest struct {
	Sections []Section
}

// Section groups documents under a sidebar heading.
type Section struct {
	Title     string        `yaml:"title"`
	Documents []DocumentRef `yaml:"documents"`
}

// DocumentRef describes one source document to embed.
type DocumentRef struct {
	Page           string `yaml:"page"`
	URL            string `yaml:"url"`
	SidebarExclude bool   `yaml:"sidebar_exclude"`
}

// IsExternal reports whether the document points at an http(s) url and
// therefore has no offline body.
func (d DocumentRef) IsExternal() bool {
	return fileutil.IsURL(d.URL)
}

// manifestFile is the on-disk shape. Docs is a pointer so a missing key
// can be told apart from an empty list.
type manifestFile struct {
	Docs *[]Section `yaml:"docs"`
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file not found: %s", ErrManifestLoad, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrManifestLoad, path, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses manifest data. Beyond requiring a top-level docs
// list, the structure is not validated: unknown keys are ignored and empty
// sections are legal.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw manifestFile
	if err := yamlutil.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestLoad, err)
	}
	if raw.Docs == nil {
		return nil, fmt.Errorf("%w: missing top-level \"docs\" key", ErrManifestLoad)
	}
	return &Manifest{Sections: *raw.Docs}, nil
}

// DocumentCount returns the total number of document references.
func (m *Manifest) DocumentCount() int {
	n := 0
	for _, s := range m.Sections {
		n += len(s.Documents)
	}
	return n
}
