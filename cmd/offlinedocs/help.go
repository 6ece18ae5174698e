package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: offlinedocs [flags] [<manifest> <base-dir> <output>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble the documents listed in a manifest into one offline HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -m, --manifest <path>     Manifest file (YAML or JSON)")
	fmt.Fprintln(w, "  -b, --base-dir <dir>      Directory document urls are relative to (default \".\")")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default \"offline-docs.html\")")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -t, --template <name>     Template name (default, plain) or file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/<name>.html overrides")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for code blocks (default \"github\")")
	fmt.Fprintln(w, "      --rewrite-links       Turn relative links into page anchors or file:// URLs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-document diagnostics")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  OFFLINEDOCS_CONFIG, OFFLINEDOCS_MANIFEST, OFFLINEDOCS_BASE_DIR,")
	fmt.Fprintln(w, "  OFFLINEDOCS_OUTPUT, OFFLINEDOCS_TEMPLATE, OFFLINEDOCS_ASSET_PATH,")
	fmt.Fprintln(w, "  OFFLINEDOCS_HIGHLIGHT_STYLE, OFFLINEDOCS_WORKERS, OFFLINEDOCS_REWRITE_LINKS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults.")
}
