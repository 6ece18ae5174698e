// Package hints provides actionable hints for common CLI failures.
// A hint is a short plain-text suggestion, or "" when nothing useful applies.
package hints

import (
	"strings"

	"github.com/alnah/go-offlinedocs/internal/fileutil"
)

// maxListed caps how many alternatives a hint enumerates.
const maxListed = 12

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-offlinedocs") {
			hint += " or create " + p
			break
		}
	}

	return hint
}

// ForManifest describes the manifest shape expected at the top level.
func ForManifest(path string) string {
	if path != "" && !fileutil.FileExists(path) {
		return "check the manifest path: " + path
	}
	return "the manifest needs a top-level \"docs\" list of sections with title and documents"
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return "check parent directory exists and is writable"
}

// ForTemplateNotFound lists the built-in template names.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return "available: " + strings.Join(available, ", ") + "; or pass a file path containing {{SIDEBAR}} and {{CONTENT}}"
}

// ForHighlightStyle lists some valid chroma style names.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	listed := available
	suffix := ""
	if len(listed) > maxListed {
		listed = listed[:maxListed]
		suffix = ", ..."
	}
	return "available: " + strings.Join(listed, ", ") + suffix
}

// Join combines several hints, skipping empty ones.
func Join(hints ...string) string {
	var parts []string
	for _, h := range hints {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, "; ")
}
