package offlinedocs

import (
	"log/slog"

	"github.com/alnah/go-offlinedocs/internal/pipeline"
)

// FormatRule pairs a detection predicate with a converter.
// See WithFormatRules.
type FormatRule = pipeline.FormatRule

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

// resolverConfig holds construction-time settings for Resolver.
type resolverConfig struct {
	highlightStyle string
	extraRules     []FormatRule
	rewriteLinks   bool
	logger         *slog.Logger
}

// WithHighlightStyle selects the chroma style for fenced code blocks.
// Unknown names make NewResolver fail.
func WithHighlightStyle(name string) ResolverOption {
	return func(c *resolverConfig) {
		c.highlightStyle = name
	}
}

// WithFormatRules adds rules evaluated before the built-in format chain.
func WithFormatRules(rules ...FormatRule) ResolverOption {
	return func(c *resolverConfig) {
		c.extraRules = append(c.extraRules, rules...)
	}
}

// WithLinkRewriting rewrites relative links and images inside fragments:
// links to other manifest documents become same-page anchors, everything
// else becomes a file:// URL beneath the base directory.
func WithLinkRewriting(enabled bool) ResolverOption {
	return func(c *resolverConfig) {
		c.rewriteLinks = enabled
	}
}

// WithResolverLogger sets the logger for per-document diagnostics.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(c *resolverConfig) {
		c.logger = l
	}
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithResolver replaces the default Resolver.
func WithResolver(r *Resolver) Option {
	return func(a *Assembler) {
		a.resolver = r
	}
}

// WithWorkers sets how many documents are resolved concurrently.
// 0 selects ResolvePoolSize(0). Output order never depends on this value.
func WithWorkers(n int) Option {
	return func(a *Assembler) {
		a.workers = n
	}
}

// WithLogger sets the assembler logger. It is also used by the default
// Resolver when WithResolver is not given.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = l
	}
}
