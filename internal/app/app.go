// Package app ties configuration, orchestration, and presentation together
// into the recipsum command. It owns process lifecycle concerns such as exit
// codes, timeouts, and signal handling.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/recipsum/internal/config"
	"github.com/agbru/recipsum/internal/reduce"
	"github.com/agbru/recipsum/internal/ui"
)

// Application represents the recipsum application instance.
type Application struct {
	Config    config.AppConfig
	Factory   reduce.ReducerFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom ReducerFactory for the application.
func WithFactory(f reduce.ReducerFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = reduce.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "recipsum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveThresholds(cfg)

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	ui.InitTheme(false)

	if a.Config.Serve {
		return a.runServe(ctx)
	}

	return a.runReduce(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
