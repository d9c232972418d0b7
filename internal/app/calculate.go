package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/agbru/fibtime/internal/cli"
	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/fibonacci"
	"github.com/agbru/fibtime/internal/logging"
	"github.com/agbru/fibtime/internal/metrics"
	"github.com/agbru/fibtime/internal/orchestration"
	"github.com/agbru/fibtime/internal/sysmon"
	"github.com/agbru/fibtime/internal/ui"
)

// runCalculate reads the index, checks it against the ceiling, runs the
// selected calculators and reports.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	calculators := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculators) == 0 {
		fmt.Fprintln(a.ErrWriter, ui.Stderr.Error(fmt.Sprintf("Error: unknown algorithm %q.", a.Config.Algo)))
		return apperrors.ExitErrorConfig
	}

	n, code, ok := a.readIndex(out, orchestration.InputBits(calculators))
	if !ok {
		return code
	}

	if err := a.Config.Ceiling().Check(n); err != nil {
		return a.rejectIndex(out, n, calculators, err)
	}

	// Signals are only trapped once reading is over, so that an interrupt
	// at the prompt still terminates the process.
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	reporter, activityOut := a.activityReporter()
	opts := orchestration.Options{N: n, Timeout: a.Config.Timeout}
	results := orchestration.ExecuteCalculations(ctx, calculators, opts, reporter, activityOut)
	a.recordResults(n, results)

	if len(results) > 1 {
		code = orchestration.AnalyzeComparisonResults(results, n, cli.CLIResultPresenter{Quiet: a.Config.Quiet}, out)
	} else {
		code = a.presentResult(ctx, out, n, results[0])
	}

	a.writeMetrics()
	return code
}

// readIndex returns the index from -n / FIBTIME_N or from the prompt. The
// boolean is false when the run must stop with the returned exit code.
func (a *Application) readIndex(out io.Writer, bits int) (int64, int, bool) {
	if a.Config.HasN {
		if !fibonacci.FitsWidth(a.Config.N, bits) {
			fmt.Fprintln(a.ErrWriter, ui.Stderr.Error(fmt.Sprintf("Error: n = %d does not fit in a %d-bit integer.", a.Config.N, bits)))
			return 0, apperrors.ExitErrorConfig, false
		}
		return a.Config.N, apperrors.ExitSuccess, true
	}

	prompt := ""
	if !a.Config.Quiet {
		fmt.Fprintln(out)
		prompt = a.Config.Prompt()
	}

	n, err := cli.NewPrompter(a.In, out, a.Logger).ReadInt(prompt, bits)
	switch {
	case err == nil:
		return n, apperrors.ExitSuccess, true
	case errors.Is(err, apperrors.ErrEndOfInput):
		a.Logger.Info("input ended before a valid index was read")
		fmt.Fprintln(a.ErrWriter, ui.Stderr.Error("Error: unexpected end of input."))
		return 0, apperrors.ExitErrorInput, false
	default:
		a.Logger.Error("reading index", err)
		fmt.Fprintln(a.ErrWriter, ui.Stderr.Error(fmt.Sprintf("Error: %v", err)))
		return 0, apperrors.ExitErrorGeneric, false
	}
}

// rejectIndex reports an index above the enforced ceiling. This is a normal
// early exit.
func (a *Application) rejectIndex(out io.Writer, n int64, calculators []fibonacci.Calculator, err error) int {
	var boundErr *apperrors.BoundError
	if !errors.As(err, &boundErr) {
		fmt.Fprintln(a.ErrWriter, ui.Stderr.Error(fmt.Sprintf("Error: %v", err)))
		return apperrors.ExitErrorGeneric
	}

	a.Logger.Info("index above ceiling",
		logging.Int64("n", n),
		logging.Int64("max", boundErr.Max))
	for _, calc := range calculators {
		a.Recorder.ObserveRejected(calc.Name(), n)
	}

	if a.Config.Quiet {
		fmt.Fprintln(out, ui.Error(boundErr.Error()))
	} else {
		cli.DisplayBoundViolation(out, boundErr)
	}
	a.writeMetrics()
	return apperrors.ExitSuccess
}

// activityReporter picks the spinner only when it has a terminal to draw on.
// Otherwise the start and end of the run are logged at debug level.
func (a *Application) activityReporter() (orchestration.ActivityReporter, io.Writer) {
	if a.Config.Quiet {
		return orchestration.NullActivityReporter{}, io.Discard
	}
	if !ui.IsTerminal(a.ErrWriter) {
		return orchestration.ActivityReporterFunc(a.logActivity), io.Discard
	}
	return cli.CLIActivityReporter{}, a.ErrWriter
}

func (a *Application) logActivity(wg *sync.WaitGroup, done <-chan struct{}, numCalculators int, _ io.Writer) {
	defer wg.Done()
	a.Logger.Debug("calculation started", logging.Int("calculators", numCalculators))
	<-done
	a.Logger.Debug("calculation finished", logging.Int("calculators", numCalculators))
}

func (a *Application) recordResults(n int64, results []orchestration.CalculationResult) {
	for _, res := range results {
		a.Recorder.ObserveCalculation(res.Name, n, res.Duration, res.Err)
		if res.Err != nil {
			a.Logger.Error("calculation failed", res.Err,
				logging.String("algorithm", res.Name),
				logging.Int64("n", n))
			continue
		}
		a.Logger.Debug("calculation finished",
			logging.String("algorithm", res.Name),
			logging.Int64("n", n),
			logging.Int64("value", res.Value),
			logging.Float64("duration_ms", float64(res.Duration.Microseconds())/1000))
	}
}

// presentResult reports a single calculation and returns the exit code.
func (a *Application) presentResult(ctx context.Context, out io.Writer, n int64, res orchestration.CalculationResult) int {
	if res.Err != nil {
		return apperrors.HandleCalculationError(res.Err, res.Duration, a.ErrWriter, ui.Stderr)
	}

	if a.Config.Quiet {
		cli.DisplayQuietResult(out, res.Value)
		return apperrors.ExitSuccess
	}

	cli.DisplayReport(out, n, res.Value, res.Duration.Milliseconds())
	if a.Config.Details {
		cli.DisplayDetails(out, cli.DetailsView{
			N:      n,
			Result: res,
			Memory: metrics.NewMemoryCollector().Snapshot(),
			System: sysmon.Sample(ctx),
		})
	}
	return apperrors.ExitSuccess
}

// writeMetrics exports the Prometheus textfile when --metrics-file is set.
// A failed export is reported but does not change the exit code.
func (a *Application) writeMetrics() {
	path := a.Config.MetricsFile
	if path == "" {
		return
	}
	if err := a.Recorder.WriteTextfile(path); err != nil {
		a.Logger.Error("writing metrics file", err, logging.String("path", path))
		fmt.Fprintln(a.ErrWriter, ui.Stderr.Warning(fmt.Sprintf("Warning: could not write metrics file: %v", err)))
		return
	}
	a.Logger.Debug("metrics written", logging.String("path", path))
}
