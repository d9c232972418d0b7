package orchestration

import (
	"github.com/agbru/fibtime/internal/fibonacci"
)

// GetCalculatorsToRun resolves the algorithm selection against the factory.
// "all" yields every registered calculator in sorted name order; an unknown
// name yields nil.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == fibonacci.AlgoAll {
		keys := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}

// InputBits returns the narrowest width among calculators. The index read
// from the user has to fit every calculator that will receive it.
func InputBits(calculators []fibonacci.Calculator) int {
	bits := 0
	for _, c := range calculators {
		if bits == 0 || c.Bits() < bits {
			bits = c.Bits()
		}
	}
	if bits == 0 {
		return 64
	}
	return bits
}
