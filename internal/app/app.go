// Package app provides the core application structure for the kmul CLI.
// It handles application lifecycle, command dispatching, and version management.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/kmul/internal/calibration"
	"github.com/agbru/kmul/internal/config"
	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/logging"
	"github.com/agbru/kmul/internal/reference"
	"github.com/agbru/kmul/internal/server"
	"github.com/agbru/kmul/internal/ui"
)

// Application represents the kmul application instance.
type Application struct {
	Config    config.AppConfig
	Factory   reference.Factory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom multiplier Factory for the application.
func WithFactory(f reference.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = reference.GlobalFactory()
	}

	programName := "kmul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
	} else {
		cfg = config.ApplyAdaptiveThreshold(cfg)
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.configureLogging()
	ui.InitTheme(a.Config.NoColor)

	if a.Config.MetricsAddr != "" {
		return a.runWithMetricsServer(ctx, out)
	}
	return a.dispatch(ctx, out)
}

func (a *Application) dispatch(ctx context.Context, out io.Writer) int {
	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}
	return a.runMultiply(ctx, out)
}

// configureLogging routes the global zerolog logger to ErrWriter at the
// configured level. The level was validated by config.ParseConfig.
func (a *Application) configureLogging() {
	_ = logging.SetGlobalLevel(a.Config.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.ErrWriter,
		TimeFormat: time.TimeOnly,
		NoColor:    a.Config.NoColor,
	}).With().Timestamp().Logger()
}

// runWithMetricsServer serves Prometheus metrics for the duration of the
// run. A server failure is reported after the run completes.
func (a *Application) runWithMetricsServer(ctx context.Context, out io.Writer) int {
	srvCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()

	g, gctx := errgroup.WithContext(srvCtx)
	srv := server.NewServer(a.Config.MetricsAddr,
		server.WithAlgorithms(a.Factory.List()),
		server.WithLogger(logging.NewLogger(a.ErrWriter, "metrics-server")),
	)
	g.Go(func() error { return srv.Run(gctx) })

	code := a.dispatch(ctx, out)
	stopServer()
	if err := g.Wait(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		if code == apperrors.ExitSuccess {
			code = apperrors.ExitErrorGeneric
		}
	}
	return code
}

// runCalibration runs the threshold sweep.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()
	return calibration.RunCalibration(ctx, out, a.Factory.GetAll(), calibration.CalibrationOptions{
		ProfilePath:  a.Config.CalibrationProfile,
		SaveProfile:  true,
		OperandWords: a.Config.CalibrationWords,
	})
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
