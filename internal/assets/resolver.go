package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-offlinedocs/internal/fileutil"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the template is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom loader first if available.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// LoadPageTemplate resolves nameOrPath to a validated PageTemplate.
// A value containing a path separator is read directly from disk;
// anything else is a template name looked up through loader.
// An empty value selects DefaultTemplateName.
func LoadPageTemplate(loader AssetLoader, nameOrPath string) (*PageTemplate, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultTemplateName
	}

	var raw string
	if fileutil.IsFilePath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- template path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, nameOrPath)
			}
			return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		raw = string(data)
	} else {
		content, err := loader.LoadTemplate(nameOrPath)
		if err != nil {
			return nil, err
		}
		raw = content
	}

	return NewPageTemplate(raw)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
