package assets

import (
	"fmt"
	"strings"
)

// Named slots substituted by PageTemplate.Render.
const (
	SidebarPlaceholder = "{{SIDEBAR}}"
	ContentPlaceholder = "{{CONTENT}}"
)

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"

// PageTemplate is an immutable page shell with sidebar and content slots.
type PageTemplate struct {
	raw string
}

// NewPageTemplate validates raw and returns a PageTemplate.
// Returns ErrInvalidTemplate if either placeholder is missing.
func NewPageTemplate(raw string) (*PageTemplate, error) {
	var missing []string
	for _, p := range []string{SidebarPlaceholder, ContentPlaceholder} {
		if !strings.Contains(raw, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidTemplate, strings.Join(missing, ", "))
	}
	return &PageTemplate{raw: raw}, nil
}

// MustPageTemplate is like NewPageTemplate but panics on error.
// Intended for package-level templates known to be valid.
func MustPageTemplate(raw string) *PageTemplate {
	t, err := NewPageTemplate(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Render substitutes sidebar and content into the template in a single pass,
// so placeholder text inside either value is never expanded again.
func (t *PageTemplate) Render(sidebar, content string) string {
	r := strings.NewReplacer(
		SidebarPlaceholder, sidebar,
		ContentPlaceholder, content,
	)
	return r.Replace(t.raw)
}
