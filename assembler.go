package offlinedocs

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/alnah/go-offlinedocs/internal/pipeline"
)

// Assembler builds the sidebar and content regions from a manifest and
// renders them into a page template. It is safe for concurrent use.
type Assembler struct {
	template *PageTemplate
	resolver *Resolver
	workers  int
	logger   *slog.Logger
}

// NewAssembler creates an Assembler around tmpl.
// Returns ErrNilTemplate if tmpl is nil and ErrInvalidWorkers for a
// negative or oversized worker count.
func NewAssembler(tmpl *PageTemplate, opts ...Option) (*Assembler, error) {
	if tmpl == nil {
		return nil, ErrNilTemplate
	}

	a := &Assembler{
		template: tmpl,
		workers:  MinWorkers,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.workers < 0 || a.workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, a.workers, MaxWorkers)
	}
	a.workers = ResolvePoolSize(a.workers)

	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.resolver == nil {
		r, err := NewResolver(WithResolverLogger(a.logger))
		if err != nil {
			return nil, err
		}
		a.resolver = r
	}
	return a, nil
}

// BuildSidebar renders one sidebar section per manifest section, in order.
// Documents with SidebarExclude set are omitted; a section left with no
// entries still renders its heading and an empty list.
func (a *Assembler) BuildSidebar(m *Manifest) string {
	var b strings.Builder
	for _, section := range m.Sections {
		b.WriteString(`<div class="sidebar-section">`)
		b.WriteString("\n<h3>")
		b.WriteString(html.EscapeString(section.Title))
		b.WriteString("</h3>\n<ul>\n")
		for _, doc := range section.Documents {
			if doc.SidebarExclude {
				continue
			}
			b.WriteString(`<li><a href="#`)
			b.WriteString(html.EscapeString(AnchorID(doc.URL)))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(doc.Page))
			b.WriteString("</a></li>\n")
		}
		b.WriteString("</ul>\n</div>\n")
	}
	return b.String()
}

// BuildContent resolves every non-external document beneath baseDir and
// concatenates one section block per document, in manifest order.
// The only error is ctx cancellation; per-document failures are embedded
// as placeholder fragments.
func (a *Assembler) BuildContent(ctx context.Context, m *Manifest, baseDir string) (string, error) {
	jobs := embeddedJobs(m)
	a.warnCollisions(m)

	var anchors map[string]string
	if a.resolver.rewriteLinks {
		anchors = documentAnchors(jobs)
	}

	results, err := resolveAll(ctx, a.resolver, baseDir, jobs, anchors, a.workers)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, res := range results {
		b.WriteString(`<div class="doc-section" id="`)
		b.WriteString(html.EscapeString(res.AnchorID))
		b.WriteString(`">`)
		b.WriteString("\n<h2>")
		b.WriteString(html.EscapeString(jobs[i].ref.Page))
		b.WriteString("</h2>\n")
		b.WriteString(res.HTMLFragment)
		b.WriteString("\n</div>\n")
	}
	return b.String(), nil
}

// Render substitutes sidebar and content into the page template.
func (a *Assembler) Render(sidebar, content string) string {
	return a.template.Render(sidebar, content)
}

// Generate builds the complete page for m. Calling it twice with the same
// inputs and unchanged sources yields identical bytes.
func (a *Assembler) Generate(ctx context.Context, m *Manifest, baseDir string) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: manifest is nil", ErrManifestLoad)
	}

	sidebar := a.BuildSidebar(m)
	content, err := a.BuildContent(ctx, m, baseDir)
	if err != nil {
		return nil, err
	}

	a.logger.Info("assembled documentation",
		"sections", len(m.Sections),
		"documents", m.DocumentCount(),
		"embedded", len(embeddedJobs(m)),
		"workers", a.workers)
	return []byte(a.Render(sidebar, content)), nil
}

// embeddedJobs flattens m into the documents that are read from disk.
func embeddedJobs(m *Manifest) []resolveJob {
	var jobs []resolveJob
	for _, section := range m.Sections {
		for _, doc := range section.Documents {
			if doc.IsExternal() {
				continue
			}
			jobs = append(jobs, resolveJob{ref: doc})
		}
	}
	return jobs
}

// documentAnchors maps each embedded document to its anchor so that links
// between embedded documents can become same-page references.
// The first occurrence of a document key wins.
func documentAnchors(jobs []resolveJob) map[string]string {
	anchors := make(map[string]string, len(jobs))
	for _, job := range jobs {
		key := pipeline.DocumentKey(job.ref.URL)
		if _, ok := anchors[key]; !ok {
			anchors[key] = AnchorID(job.ref.URL)
		}
	}
	return anchors
}

func (a *Assembler) warnCollisions(m *Manifest) {
	collisions := FindAnchorCollisions(m)
	for _, id := range slices.Sorted(maps.Keys(collisions)) {
		a.logger.Warn("anchor id shared by multiple documents", "anchor", id, "urls", collisions[id])
	}
}
