package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alnah/go-offlinedocs"
	"github.com/alnah/go-offlinedocs/internal/config"
)

// resolveConfig layers defaults, config file, environment, positional
// arguments and flags, in increasing priority, then validates the result.
func resolveConfig(flags *generateFlags, positional []string, env *Environment, logger *slog.Logger) (*config.Config, error) {
	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return nil, err
	}
	warnUnknownEnvVars(logger, env.Environ())

	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "path", configPath)
	}

	applyEnvConfig(envCfg, cfg)

	if err := applyPositionalArgs(flags, positional); err != nil {
		return nil, err
	}
	mergeFlags(flags, cfg)

	if cfg.Manifest == "" {
		return nil, fmt.Errorf("%w: no manifest specified (use --manifest or a positional argument)", ErrUsage)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runGenerate loads the manifest and template, assembles the page and
// writes it to cfg.Output.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	m, err := offlinedocs.LoadManifest(cfg.Manifest)
	if err != nil {
		return err
	}

	tmpl, err := offlinedocs.LoadPageTemplate(cfg.Template, cfg.AssetPath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	resolver, err := offlinedocs.NewResolver(
		offlinedocs.WithHighlightStyle(cfg.HighlightStyle),
		offlinedocs.WithLinkRewriting(cfg.RewriteLinks),
		offlinedocs.WithResolverLogger(logger),
	)
	if err != nil {
		return err
	}

	asm, err := offlinedocs.NewAssembler(tmpl,
		offlinedocs.WithResolver(resolver),
		offlinedocs.WithWorkers(cfg.Workers),
		offlinedocs.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if info, err := os.Stat(cfg.BaseDir); err != nil || !info.IsDir() {
		logger.Warn("base directory is not readable, documents will be placeholders", "path", cfg.BaseDir)
	}

	page, err := asm.Generate(ctx, m, cfg.BaseDir)
	if err != nil {
		return err
	}

	if err := offlinedocs.WriteOutput(cfg.Output, page); err != nil {
		return err
	}

	logger.Info("wrote offline documentation", "path", cfg.Output, "bytes", len(page))
	return nil
}
