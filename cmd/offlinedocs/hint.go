package main

import (
	"errors"
	"log/slog"

	"github.com/alnah/go-offlinedocs"
	"github.com/alnah/go-offlinedocs/internal/assets"
	"github.com/alnah/go-offlinedocs/internal/config"
	"github.com/alnah/go-offlinedocs/internal/fileutil"
	"github.com/alnah/go-offlinedocs/internal/hints"
	"github.com/alnah/go-offlinedocs/internal/pipeline"
)

// errorHint returns an actionable suggestion for err, or "".
// configName and manifestPath are the values the failing run used.
func errorHint(err error, configName, manifestPath string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if configName == "" || fileutil.IsFilePath(configName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, offlinedocs.ErrManifestLoad):
		return hints.ForManifest(manifestPath)
	case errors.Is(err, offlinedocs.ErrOutputWrite):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.NewEmbeddedLoader().TemplateNames())
	case errors.Is(err, pipeline.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(pipeline.HighlightStyleNames())
	}
	return ""
}

// logError logs a fatal error, with a hint attribute when one applies.
func logError(logger *slog.Logger, msg string, err error, hint string) {
	if hint == "" {
		logger.Error(msg, "error", err)
		return
	}
	logger.Error(msg, "error", err, "hint", hint)
}
