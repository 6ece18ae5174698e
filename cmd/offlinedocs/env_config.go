package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-offlinedocs/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "OFFLINEDOCS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // OFFLINEDOCS_CONFIG: config file name or path
	Manifest       string // OFFLINEDOCS_MANIFEST: manifest path
	BaseDir        string // OFFLINEDOCS_BASE_DIR: documentation root
	Output         string // OFFLINEDOCS_OUTPUT: output HTML path
	Template       string // OFFLINEDOCS_TEMPLATE: template name or path
	AssetPath      string // OFFLINEDOCS_ASSET_PATH: custom template directory
	HighlightStyle string // OFFLINEDOCS_HIGHLIGHT_STYLE: chroma style
	Workers        int    // OFFLINEDOCS_WORKERS: parallel workers (0 = unset)
	RewriteLinks   *bool  // OFFLINEDOCS_REWRITE_LINKS: nil when unset
}

// knownEnvVars lists valid OFFLINEDOCS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"OFFLINEDOCS_CONFIG":          true,
	"OFFLINEDOCS_MANIFEST":        true,
	"OFFLINEDOCS_BASE_DIR":        true,
	"OFFLINEDOCS_OUTPUT":          true,
	"OFFLINEDOCS_TEMPLATE":        true,
	"OFFLINEDOCS_ASSET_PATH":      true,
	"OFFLINEDOCS_HIGHLIGHT_STYLE": true,
	"OFFLINEDOCS_WORKERS":         true,
	"OFFLINEDOCS_REWRITE_LINKS":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric or boolean values are reported as errors rather than
// silently ignored.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath:     getenv("OFFLINEDOCS_CONFIG"),
		Manifest:       getenv("OFFLINEDOCS_MANIFEST"),
		BaseDir:        getenv("OFFLINEDOCS_BASE_DIR"),
		Output:         getenv("OFFLINEDOCS_OUTPUT"),
		Template:       getenv("OFFLINEDOCS_TEMPLATE"),
		AssetPath:      getenv("OFFLINEDOCS_ASSET_PATH"),
		HighlightStyle: getenv("OFFLINEDOCS_HIGHLIGHT_STYLE"),
	}

	if workers := getenv("OFFLINEDOCS_WORKERS"); workers != "" {
		w, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("%w: OFFLINEDOCS_WORKERS=%q", config.ErrInvalidWorkers, workers)
		}
		cfg.Workers = w
	}

	if rewrite := getenv("OFFLINEDOCS_REWRITE_LINKS"); rewrite != "" {
		b, err := strconv.ParseBool(rewrite)
		if err != nil {
			return nil, fmt.Errorf("%w: OFFLINEDOCS_REWRITE_LINKS=%q is not a boolean", ErrUsage, rewrite)
		}
		cfg.RewriteLinks = &b
	}

	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized OFFLINEDOCS_* variables.
// Helps catch typos like OFFLINEDOCS_BASEDIR instead of OFFLINEDOCS_BASE_DIR.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies set environment values over cfg.
// Resulting priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Manifest != "" {
		cfg.Manifest = env.Manifest
	}
	if env.BaseDir != "" {
		cfg.BaseDir = env.BaseDir
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.AssetPath != "" {
		cfg.AssetPath = env.AssetPath
	}
	if env.HighlightStyle != "" {
		cfg.HighlightStyle = env.HighlightStyle
	}
	if env.Workers != 0 {
		cfg.Workers = env.Workers
	}
	if env.RewriteLinks != nil {
		cfg.RewriteLinks = *env.RewriteLinks
	}
}
