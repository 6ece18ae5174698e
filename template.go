package offlinedocs

import "github.com/alnah/go-offlinedocs/internal/assets"

// PageTemplate is an immutable page shell with {{SIDEBAR}} and {{CONTENT}} slots.
type PageTemplate = assets.PageTemplate

// NewPageTemplate validates raw template text.
// Returns an error wrapping assets.ErrInvalidTemplate if a slot is missing.
func NewPageTemplate(raw string) (*PageTemplate, error) {
	return assets.NewPageTemplate(raw)
}

// LoadPageTemplate loads a template by built-in name or file path.
// When assetPath is set, {assetPath}/templates/{name}.html overrides the
// built-in template of the same name. An empty nameOrPath selects the default.
func LoadPageTemplate(nameOrPath, assetPath string) (*PageTemplate, error) {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, err
	}
	return assets.LoadPageTemplate(resolver, nameOrPath)
}

// DefaultPageTemplate returns the built-in page template.
func DefaultPageTemplate() (*PageTemplate, error) {
	return assets.LoadPageTemplate(assets.NewEmbeddedLoader(), assets.DefaultTemplateName)
}
