// Package orchestration runs one or more Fibonacci calculators concurrently,
// times each run and aggregates the results for comparison. Presentation is
// kept behind the ActivityReporter and ResultPresenter interfaces.
package orchestration
