package fibonacci

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// propertyCeiling keeps naive recursion fast enough for 100 random draws.
const propertyCeiling = 25

// TestRecurrenceRelation_PropertyBased verifies the defining recurrence
//
//	Fib(n) = Fib(n-1) + Fib(n-2)  for n >= 3
//
// at both widths while the values stay exact.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Recursive32 satisfies Fib(n) = Fib(n-1) + Fib(n-2)", prop.ForAll(
		func(n int32) bool {
			return Recursive32(n) == Recursive32(n-1)+Recursive32(n-2)
		},
		gen.Int32Range(3, propertyCeiling),
	))

	properties.Property("Recursive64 agrees with Recursive32 in the exact range", prop.ForAll(
		func(n int64) bool {
			return Recursive64(n) == int64(Recursive32(int32(n)))
		},
		gen.Int64Range(-propertyCeiling, propertyCeiling),
	))

	properties.Property("RecursiveChecked32 agrees with Recursive32 in the exact range", prop.ForAll(
		func(n int32) bool {
			v, err := RecursiveChecked32(n)
			return err == nil && v == Recursive32(n)
		},
		gen.Int32Range(-propertyCeiling, propertyCeiling),
	))

	properties.TestingRun(t)
}

// TestBaseCase_PropertyBased verifies that every n below 3 yields 1,
// including zero and negative indices.
func TestBaseCase_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("n < 3 yields 1", prop.ForAll(
		func(n int32) bool {
			return Recursive32(n) == 1 && Recursive64(int64(n)) == 1 && CallCount(int64(n)) == 1
		},
		gen.Int32Range(-1<<20, 2),
	))

	properties.TestingRun(t)
}

// TestCallCount_PropertyBased verifies calls(n) = 2*Fib(n) - 1.
func TestCallCount_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("CallCount(n) = 2*Fib(n)-1", prop.ForAll(
		func(n int64) bool {
			return CallCount(n) == uint64(2*Recursive64(n)-1)
		},
		gen.Int64Range(1, propertyCeiling),
	))

	properties.TestingRun(t)
}
