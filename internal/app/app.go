package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/fibtime/internal/cli"
	"github.com/agbru/fibtime/internal/config"
	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/fibonacci"
	"github.com/agbru/fibtime/internal/logging"
	"github.com/agbru/fibtime/internal/metrics"
	"github.com/agbru/fibtime/internal/ui"
)

// Application represents the fibtime application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
	In        io.Reader
	Logger    logging.Logger
	Recorder  *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader the index is read from. Defaults to os.Stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithLogger replaces the logger selected by --log-format.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.GlobalFactory()
	}
	if app.In == nil {
		app.In = os.Stdin
	}

	programName := "fibtime"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.New(errWriter, "fibtime", cfg.LogLevel, cfg.LogFormat)
	}
	for _, w := range cfg.EnvWarnings {
		app.Logger.Warn("ignoring invalid environment variable",
			logging.String("name", w.Name),
			logging.String("value", w.Value),
			logging.Err(w.Err))
	}
	app.Recorder = metrics.NewRecorder()
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor, out, a.ErrWriter)
	return a.runCalculate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps an error returned by New to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil || IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
