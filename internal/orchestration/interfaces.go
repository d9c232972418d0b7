package orchestration

import (
	"io"
	"sync"
	"time"
)

// CalculationResult is the outcome of a single timed calculation.
type CalculationResult struct {
	// Name is the human-readable algorithm description.
	Name string
	// Bits is the integer width the algorithm computed in.
	Bits int
	// Value is Fib(n) at that width. Zero when Err is set.
	Value int64
	// Duration brackets exactly the Calculate call.
	Duration time.Duration
	Err      error
}

// ActivityReporter shows that a calculation is in progress.
//
// DisplayActivity is started in its own goroutine before the calculators run
// and must return, calling wg.Done, once done is closed.
type ActivityReporter interface {
	DisplayActivity(wg *sync.WaitGroup, done <-chan struct{}, numCalculators int, out io.Writer)
}

// ActivityReporterFunc adapts a plain function to ActivityReporter.
type ActivityReporterFunc func(wg *sync.WaitGroup, done <-chan struct{}, numCalculators int, out io.Writer)

// DisplayActivity calls f.
func (f ActivityReporterFunc) DisplayActivity(wg *sync.WaitGroup, done <-chan struct{}, numCalculators int, out io.Writer) {
	f(wg, done, numCalculators, out)
}

// NullActivityReporter displays nothing. Used in quiet mode, when output is
// not a terminal, and in tests.
type NullActivityReporter struct{}

// DisplayActivity waits for done and returns.
func (NullActivityReporter) DisplayActivity(wg *sync.WaitGroup, done <-chan struct{}, _ int, _ io.Writer) {
	defer wg.Done()
	<-done
}

// ErrorHandler maps a calculation error to an exit code, reporting it on out.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// ComparisonStatus is the overall verdict of a comparison run.
type ComparisonStatus int

const (
	// StatusConsistent means every successful calculator returned the same value.
	StatusConsistent ComparisonStatus = iota
	// StatusBeyondExactRange means values differ only because n is past the
	// exact range of a narrower width.
	StatusBeyondExactRange
	// StatusMismatch means values differ where every width is exact.
	StatusMismatch
	// StatusFailure means no calculator succeeded.
	StatusFailure
)

// ResultPresenter renders the outcome of a comparison run.
type ResultPresenter interface {
	ErrorHandler

	// PresentComparisonTable displays one row per calculator.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentStatus displays the overall verdict.
	PresentStatus(status ComparisonStatus, n int64, out io.Writer)

	// PresentResult displays the report for the selected result.
	PresentResult(result CalculationResult, n int64, out io.Writer)
}
