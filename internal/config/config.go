// Package config loads offlinedocs settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-offlinedocs/internal/fileutil"
	"github.com/alnah/go-offlinedocs/internal/pipeline"
	"github.com/alnah/go-offlinedocs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Limits for config values.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxStyleName  = 64
	MaxWorkers    = 16
)

// DefaultOutput is the page written when no output path is configured.
const DefaultOutput = "offline-docs.html"

// Config holds all settings for one generation run.
type Config struct {
	Manifest       string `yaml:"manifest"`       // Manifest file path
	BaseDir        string `yaml:"baseDir"`        // Directory document urls are relative to
	Output         string `yaml:"output"`         // Generated HTML file
	Template       string `yaml:"template"`       // Template name or file path (empty = default)
	AssetPath      string `yaml:"assetPath"`      // Directory overriding built-in templates
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style for code blocks
	Workers        int    `yaml:"workers"`        // 0 = auto
	RewriteLinks   bool   `yaml:"rewriteLinks"`   // Rewrite relative links and images
}

// Validate checks value ranges and lengths.
// Called automatically by LoadConfig, but also needed after flags and
// environment overrides are merged in.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"manifest", c.Manifest},
		{"baseDir", c.BaseDir},
		{"output", c.Output},
		{"template", c.Template},
		{"assetPath", c.AssetPath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("highlightStyle", c.HighlightStyle, MaxStyleName); err != nil {
		return err
	}
	if c.HighlightStyle != "" {
		if err := pipeline.ValidateHighlightStyle(c.HighlightStyle); err != nil {
			return fmt.Errorf("highlightStyle: %w", err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be 0-%d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		BaseDir:        ".",
		Output:         DefaultOutput,
		HighlightStyle: pipeline.DefaultHighlightStyle,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// current directory, then ~/.config/go-offlinedocs/, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-offlinedocs", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
