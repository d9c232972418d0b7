package orchestration

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/fibonacci"
	"github.com/agbru/fibtime/internal/metrics"
)

const tracerName = "github.com/agbru/fibtime/internal/orchestration"

// Options carries the per-run parameters shared by every calculator.
type Options struct {
	// N is the Fibonacci index.
	N int64
	// Timeout bounds the whole run. Zero disables the limit.
	Timeout time.Duration
}

// ExecuteCalculations runs every calculator concurrently on opts.N and
// returns their results in the order of calculators.
//
// The activity reporter is started before the first calculator and is
// guaranteed to have returned when ExecuteCalculations does. A calculator that
// is still running when the context ends is abandoned and reported with a
// TimeoutError or context.Canceled.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, opts Options, reporter ActivityReporter, out io.Writer) []CalculationResult {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	done := make(chan struct{})

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayActivity(&displayWg, done, len(calculators), out)

	tracer := otel.Tracer(tracerName)
	for i, calc := range calculators {
		g.Go(func() error {
			results[i] = runCalculation(ctx, tracer, calc, opts)
			return nil
		})
	}

	_ = g.Wait()
	close(done)
	displayWg.Wait()

	return results
}

type outcome struct {
	value   int64
	err     error
	elapsed time.Duration
}

// runCalculation times a single Calculate call inside a trace span.
func runCalculation(ctx context.Context, tracer trace.Tracer, calc fibonacci.Calculator, opts Options) CalculationResult {
	ctx, span := tracer.Start(ctx, "fibonacci.calculate", trace.WithAttributes(
		attribute.String("fibonacci.algorithm", calc.Name()),
		attribute.Int64("fibonacci.n", opts.N),
		attribute.Int("fibonacci.bits", calc.Bits()),
	))
	defer span.End()

	result := CalculationResult{Name: calc.Name(), Bits: calc.Bits()}

	// Buffered so an abandoned calculation can still deliver and exit.
	ch := make(chan outcome, 1)
	start := time.Now()
	go func() {
		var o outcome
		o.elapsed = metrics.NewStopwatch().Time(func() {
			o.value, o.err = calc.Calculate(ctx, opts.N)
		})
		ch <- o
	}()

	select {
	case o := <-ch:
		result.Value, result.Err, result.Duration = o.value, o.err, o.elapsed
		if apperrors.IsContextError(o.err) {
			result.Err = contextError(o.err, calc.Name(), opts.Timeout)
		}
	case <-ctx.Done():
		result.Duration = time.Since(start)
		result.Err = contextError(ctx.Err(), calc.Name(), opts.Timeout)
	}

	if result.Err != nil {
		result.Value = 0
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
	} else {
		span.SetAttributes(attribute.Int64("fibonacci.value", result.Value))
		span.SetStatus(codes.Ok, "")
	}
	return result
}

func contextError(err error, operation string, limit time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: operation, Limit: limit}
	}
	return err
}

// AnalyzeComparisonResults summarizes a run of several calculators.
//
// Results are sorted successes first, then by duration, and shown as a
// table. Differing values are expected once n is past the exact range of the
// narrowest width that succeeded; within that range they are an
// inconsistency and yield ExitErrorMismatch. The reported result is the one
// computed at the widest width.
//
// Returns the process exit code.
func AnalyzeComparisonResults(results []CalculationResult, n int64, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var selected *CalculationResult
	var firstError error
	exactLimit := int64(-1)

	for i := range results {
		res := &results[i]
		if res.Err != nil {
			if firstError == nil {
				firstError = res.Err
			}
			continue
		}
		if selected == nil || res.Bits > selected.Bits {
			selected = res
		}
		if limit := fibonacci.MaxExactN(res.Bits); exactLimit < 0 || limit < exactLimit {
			exactLimit = limit
		}
	}

	presenter.PresentComparisonTable(results, out)

	if selected == nil {
		presenter.PresentStatus(StatusFailure, n, out)
		return presenter.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Value != selected.Value {
			mismatch = true
			break
		}
	}

	switch {
	case mismatch && n <= exactLimit:
		presenter.PresentStatus(StatusMismatch, n, out)
		return apperrors.ExitErrorMismatch
	case mismatch:
		presenter.PresentStatus(StatusBeyondExactRange, n, out)
	default:
		presenter.PresentStatus(StatusConsistent, n, out)
	}

	presenter.PresentResult(*selected, n, out)
	return apperrors.ExitSuccess
}
