// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cli wires the setu commands.
//
// # Output Streams
//
// Results go to stdout. Logs, warnings and human-readable errors go to
// stderr. With --json, errors are written to stdout as an
// [respond.ErrorEnvelope] so scripts only have to read one stream.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/setu/internal/output"
	"github.com/taibuivan/setu/internal/platform/apperr"
	"github.com/taibuivan/setu/internal/platform/config"
	"github.com/taibuivan/setu/internal/platform/constants"
	"github.com/taibuivan/setu/internal/platform/ctxutil"
	"github.com/taibuivan/setu/internal/platform/respond"
	"github.com/taibuivan/setu/pkg/lolicon"
	"github.com/taibuivan/setu/pkg/uuidv7"
)

// Options describes one invocation.
type Options struct {
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env replaces the process environment when non-nil. Keys carry the
	// SETU_ prefix.
	Env map[string]string
}

// app holds the state shared by every command of one invocation.
type app struct {
	env map[string]string

	// Global flags
	jsonOutput bool
	verbose    bool
	color      string

	// Set by the persistent pre-run hook
	ctx     context.Context
	cfg     *config.Config
	printer *output.Printer
}

// Run executes the command line described by opts and returns the process
// exit code.
func Run(ctx context.Context, opts Options) int {
	a := &app{env: opts.Env}

	root := a.rootCmd()
	root.SetArgs(opts.Args)
	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.report(ctx, opts.Stdout, opts.Stderr, err)
	}
	return apperr.ExitCode(err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Build and inspect Lolicon setu v2 API requests",
		Long: `setu builds request URLs for the Lolicon setu v2 image API and
decodes its response bodies.

Example usage:
  setu url --r18 r18 --uid 16731 --aspect-ratio lt1
  setu url --tag '萝莉|少女' --tag '白丝|黑丝' --num 5
  setu url --preset weekly.yaml --json
  curl -s "$(setu url --num 3)" | setu decode --size regular`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print results and errors as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.color, "color", "", "color mode: auto, always or never (default from SETU_COLOR)")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperr.ValidationError(err.Error())
	})

	root.AddCommand(a.urlCmd(), a.decodeCmd(), a.versionCmd())
	return root
}

// setup loads configuration and prepares the logger and printer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return apperr.Unprocessable("Invalid configuration: "+err.Error(), err)
	}
	a.cfg = cfg

	colorName := cfg.Color
	if a.color != "" {
		colorName = a.color
	}
	mode, err := output.ParseColorMode(colorName)
	if err != nil {
		return apperr.ValidationError("Invalid flag", apperr.FieldError{Field: "color", Message: err.Error()})
	}
	a.printer = output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(mode))

	runID := uuidv7.New()
	logger := a.newLogger(cmd.ErrOrStderr(), runID)

	ctx := ctxutil.WithRunID(cmd.Context(), runID)
	ctx = ctxutil.WithLogger(ctx, logger)
	cmd.SetContext(ctx)
	a.ctx = ctx

	startedAt, err := uuidv7.Time(runID)
	if err != nil {
		return apperr.Internal(err)
	}

	logger.DebugContext(ctx, "configuration_loaded",
		slog.String("command", cmd.Name()),
		slog.Time("started_at", startedAt),
		slog.String("environment", cfg.Environment),
		slog.Bool("aspect_ratio_checked", lolicon.AspectRatioChecked()),
	)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.env != nil {
		return config.LoadFrom(a.env)
	}
	return config.Load()
}

// newLogger builds the root logger. Logs always go to stderr.
func (a *app) newLogger(w io.Writer, runID string) *slog.Logger {
	level := a.cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: a.cfg.LogSource(level)}

	var handler slog.Handler
	if a.cfg.JSONLogs() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String(constants.FieldApp, constants.AppName),
		slog.String(constants.FieldRunID, runID),
	)
}

// report prints err in the mode selected by the global flags.
func (a *app) report(ctx context.Context, stdout, stderr io.Writer, err error) {
	if a.ctx != nil {
		ctx = a.ctx
	}

	if a.jsonOutput {
		if werr := respond.Error(ctx, stdout, err); werr != nil {
			ctxutil.GetLogger(ctx).ErrorContext(ctx, "write_error_failed", slog.Any("error", werr))
		}
		return
	}

	printer := a.printer
	if printer == nil {
		printer = output.NewPrinter(stdout, stderr, false)
	}

	// Usage errors raised by cobra itself are plain errors worth showing as is.
	if !apperr.IsAppError(err) {
		ctxutil.GetLogger(ctx).DebugContext(ctx, "unhandled_error", slog.String("error", err.Error()))
		printer.Error("%s", err)
		return
	}
	printer.AppError(apperr.As(err))
}
