package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// Registered algorithm names.
const (
	AlgoNaive   = "naive"
	AlgoNaive64 = "naive64"
	AlgoChecked = "checked"
	// AlgoAll selects every registered calculator for a comparison run.
	AlgoAll = "all"
)

// CalculatorFactory resolves calculators by name.
type CalculatorFactory interface {
	// List returns the registered names in sorted order.
	List() []string
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// Register adds or replaces a calculator.
	Register(name string, calc Calculator)
}

// DefaultFactory is a concurrency-safe CalculatorFactory.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory preloaded with the naive, naive64 and
// checked calculators.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register(AlgoNaive, NewCalculator(NaiveRecursion{}))
	f.Register(AlgoNaive64, NewCalculator(NaiveRecursion64{}))
	f.Register(AlgoChecked, NewCalculator(CheckedRecursion{}))
	return f
}

// Register adds or replaces a calculator.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
	return calc, nil
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns a process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}
