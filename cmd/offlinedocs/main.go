package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain runs the CLI and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		fmt.Fprintln(env.Stderr, "Run 'offlinedocs --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "offlinedocs %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.common)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	configName := flags.common.config
	if configName == "" {
		configName = env.Getenv("OFFLINEDOCS_CONFIG")
	}

	cfg, err := resolveConfig(flags, positional, env, logger)
	if err != nil {
		logError(logger, "invalid configuration", err, errorHint(err, configName, ""))
		return exitCodeFor(err)
	}

	if err := runGenerate(ctx, cfg, logger); err != nil {
		logError(logger, "generation failed", err, errorHint(err, configName, cfg.Manifest))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLogger builds the diagnostic logger. Verbose enables per-document
// debug records; quiet keeps only errors.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
