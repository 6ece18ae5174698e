package offlinedocs

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/alnah/go-offlinedocs/internal/fileutil"
	"github.com/alnah/go-offlinedocs/internal/pipeline"
)

// ResolvedContent is the HTML to embed for one document.
type ResolvedContent struct {
	AnchorID     string
	HTMLFragment string
}

// Resolver turns a DocumentRef into an embeddable HTML fragment.
// Resolve is total: every failure degrades to a placeholder fragment.
type Resolver struct {
	rules        []pipeline.FormatRule
	rewriteLinks bool
	logger       *slog.Logger
}

// NewResolver creates a Resolver with the default format chain.
// Returns an error only for invalid options (e.g. unknown highlight style).
func NewResolver(opts ...ResolverOption) (*Resolver, error) {
	cfg := resolverConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	md, err := pipeline.NewGoldmarkConverter(cfg.highlightStyle)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		rules:        slices.Concat(cfg.extraRules, pipeline.DefaultFormatRules(md)),
		rewriteLinks: cfg.rewriteLinks,
		logger:       cfg.logger,
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r, nil
}

// Resolve reads the document beneath baseDir and converts it to HTML.
func (r *Resolver) Resolve(baseDir string, ref DocumentRef) ResolvedContent {
	return r.resolve(baseDir, ref, nil)
}

// resolve is Resolve with a document-key-to-anchor table used when
// link rewriting is enabled.
func (r *Resolver) resolve(baseDir string, ref DocumentRef, anchors map[string]string) ResolvedContent {
	return ResolvedContent{
		AnchorID:     AnchorID(ref.URL),
		HTMLFragment: r.fragment(baseDir, ref, anchors),
	}
}

func (r *Resolver) fragment(baseDir string, ref DocumentRef, anchors map[string]string) string {
	content, err := readSource(baseDir, ref.URL)
	switch {
	case errors.Is(err, ErrContentNotFound):
		r.logger.Warn("document source not found", "url", ref.URL, "error", err)
		return notFoundFragment(ref.URL)
	case err != nil:
		r.logger.Warn("document source unreadable", "url", ref.URL, "error", err)
		return errorFragment(ref.URL)
	}

	if pipeline.HasFrontMatter(content) {
		r.logger.Debug("stripping front matter", "url", ref.URL)
		content = pipeline.StripFrontMatter(content)
	}

	format, out, err := pipeline.ApplyFormatRules(r.rules, ref.URL, content)
	if err != nil {
		r.logger.Warn("document conversion failed", "url", ref.URL, "format", format,
			"error", fmt.Errorf("%w: %v", ErrContentLoad, err))
		return errorFragment(ref.URL)
	}

	if r.rewriteLinks {
		rw := pipeline.LinkRewriter{RootDir: baseDir, Anchors: anchors}
		rewritten, err := rw.Rewrite(out, ref.URL)
		if err != nil {
			r.logger.Warn("link rewriting failed, keeping original references", "url", ref.URL, "error", err)
		} else {
			out = rewritten
		}
	}

	r.logger.Debug("resolved document", "url", ref.URL, "format", format, "bytes", len(out))
	return out
}

// readSource reads url joined beneath baseDir.
// Returns ErrContentNotFound for a missing file and ErrContentLoad otherwise.
func readSource(baseDir, url string) (string, error) {
	path, err := fileutil.JoinUnder(baseDir, url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrContentLoad, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path contained under baseDir above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrContentNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrContentLoad, err)
	}
	return string(data), nil
}

// notFoundFragment is embedded when the source file does not exist.
func notFoundFragment(url string) string {
	return "<p>Content not found for: " + html.EscapeString(url) + "</p>"
}

// errorFragment is embedded for any other read or conversion failure.
func errorFragment(url string) string {
	return "<p>Error loading content for: " + html.EscapeString(url) + "</p>"
}
