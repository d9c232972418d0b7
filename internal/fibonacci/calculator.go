//go:generate mockgen -destination=mocks/mock_calculator.go -package=mocks github.com/agbru/fibtime/internal/fibonacci Calculator

package fibonacci

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/fibtime/internal/errors"
)

// Calculator is the public contract for a Fibonacci implementation.
type Calculator interface {
	// Name returns a human-readable description of the algorithm.
	Name() string
	// Bits is the signed integer width the algorithm computes in.
	Bits() int
	// Calculate computes Fib(n). The context is checked before the work
	// starts; the recursion itself runs to completion once begun.
	Calculate(ctx context.Context, n int64) (int64, error)
}

// coreCalculator is implemented by the recursion strategies and adapted to
// Calculator by FibCalculator.
type coreCalculator interface {
	Name() string
	Bits() int
	CalculateCore(n int64) (int64, error)
}

// FibCalculator adapts a coreCalculator to the Calculator interface, adding
// context and width checks common to every strategy.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps a core strategy.
func NewCalculator(core coreCalculator) Calculator {
	return &FibCalculator{core: core}
}

// Name returns the name of the wrapped strategy.
func (c *FibCalculator) Name() string { return c.core.Name() }

// Bits returns the integer width of the wrapped strategy.
func (c *FibCalculator) Bits() int { return c.core.Bits() }

// Calculate validates n against the strategy width and runs it.
func (c *FibCalculator) Calculate(ctx context.Context, n int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !FitsWidth(n, c.core.Bits()) {
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("%d does not fit in a %d-bit integer", n, c.core.Bits()),
		}
	}
	return c.core.CalculateCore(n)
}

// NaiveRecursion is the default strategy: 32-bit naive recursion with silent
// wraparound.
type NaiveRecursion struct{}

func (NaiveRecursion) Name() string { return "Naive Recursion (int32, wrapping)" }
func (NaiveRecursion) Bits() int    { return 32 }

// CalculateCore runs Recursive32.
func (NaiveRecursion) CalculateCore(n int64) (int64, error) {
	return int64(Recursive32(int32(n))), nil
}

// NaiveRecursion64 runs the naive recursion at 64-bit width.
type NaiveRecursion64 struct{}

func (NaiveRecursion64) Name() string { return "Naive Recursion (int64, wrapping)" }
func (NaiveRecursion64) Bits() int    { return 64 }

// CalculateCore runs Recursive64.
func (NaiveRecursion64) CalculateCore(n int64) (int64, error) {
	return Recursive64(n), nil
}

// CheckedRecursion runs the 32-bit recursion and fails on overflow.
type CheckedRecursion struct{}

func (CheckedRecursion) Name() string { return "Naive Recursion (int32, overflow-checked)" }
func (CheckedRecursion) Bits() int    { return 32 }

// CalculateCore runs RecursiveChecked32.
func (CheckedRecursion) CalculateCore(n int64) (int64, error) {
	v, err := RecursiveChecked32(int32(n))
	if err != nil {
		return 0, apperrors.CalculationError{Algorithm: AlgoChecked, Cause: fmt.Errorf("fibonacci(%d): %w", n, err)}
	}
	return int64(v), nil
}
