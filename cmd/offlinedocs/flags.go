package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-offlinedocs/internal/config"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds output control flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// generateFlags holds all flags for a generation run.
type generateFlags struct {
	common         commonFlags
	manifest       string
	baseDir        string
	output         string
	template       string
	assetPath      string
	highlightStyle string
	workers        int
	rewriteLinks   bool

	// set records which flags were given explicitly.
	set *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-document diagnostics")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// parseFlags parses generation flags and returns positional args.
func parseFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("offlinedocs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &generateFlags{set: fs}

	fs.StringVarP(&f.manifest, "manifest", "m", "", "manifest file (YAML or JSON)")
	fs.StringVarP(&f.baseDir, "base-dir", "b", "", "directory document urls are relative to")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file")
	fs.StringVarP(&f.template, "template", "t", "", "page template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding built-in templates")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite relative links and images")

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, fs.Args(), nil
}

// applyPositionalArgs maps "<manifest> <base-dir> <output>" onto flags.
// Either all three are given or none; a positional value cannot be combined
// with its equivalent flag.
func applyPositionalArgs(f *generateFlags, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 3:
	default:
		return fmt.Errorf("%w: expected <manifest> <base-dir> <output>, got %d argument(s)", ErrUsage, len(args))
	}

	for i, name := range []string{"manifest", "base-dir", "output"} {
		if f.set.Changed(name) {
			return fmt.Errorf("%w: --%s conflicts with positional argument %q", ErrUsage, name, args[i])
		}
		if err := f.set.Set(name, args[i]); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
	}
	return nil
}

// mergeFlags copies explicitly set flags into cfg (CLI wins).
func mergeFlags(f *generateFlags, cfg *config.Config) {
	changed := f.set.Changed

	if changed("manifest") {
		cfg.Manifest = f.manifest
	}
	if changed("base-dir") {
		cfg.BaseDir = f.baseDir
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("template") {
		cfg.Template = f.template
	}
	if changed("asset-path") {
		cfg.AssetPath = f.assetPath
	}
	if changed("highlight-style") {
		cfg.HighlightStyle = f.highlightStyle
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("rewrite-links") {
		cfg.RewriteLinks = f.rewriteLinks
	}
}
