package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/ptable/internal/config"
	"github.com/roach88/ptable/internal/store"
)

// app is the state shared by every command: resolved config, the loaded
// Record Store and a session-scoped logger.
type app struct {
	cfg    config.Config
	store  *store.Store
	logger *slog.Logger
}

// newApp resolves configuration, sets up logging and loads the Record Store.
// Any failure here is a startup failure (ExitCommandError).
func newApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.SlogLevel())

	logger.Debug("loading records", "path", cfg.DataPath)
	st, err := store.Load(cfg.DataPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load data", err)
	}
	logger.Debug("records loaded", "path", cfg.DataPath, "records", st.Len(), "fields", len(st.Header()))

	return &app{cfg: cfg, store: st, logger: logger}, nil
}

// resolveConfig layers command-line flags over config.Load.
func resolveConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return cfg, nil
}

// newLogger builds a text logger tagged with a fresh session id.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("session", uuid.Must(uuid.NewV7()).String())
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// formatter builds the OutputFormatter for a command.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// reportStartupError writes a startup failure as a JSON envelope when JSON
// output is selected. Text mode leaves reporting to main.
func reportStartupError(f *OutputFormatter, err error) {
	if f.Format != "json" {
		return
	}
	code := errorCode(err)
	if code == ErrCodeGeneric {
		code = ErrCodeConfig
	}
	_ = f.Error(code, err.Error(), nil)
}
