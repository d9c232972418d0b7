package fibonacci

import (
	"context"
	"fmt"
)

// ExampleNewCalculator shows the names of the registered strategies.
func ExampleNewCalculator() {
	fmt.Println(NewCalculator(NaiveRecursion{}).Name())
	fmt.Println(NewCalculator(NaiveRecursion64{}).Name())
	fmt.Println(NewCalculator(CheckedRecursion{}).Name())
	// Output:
	// Naive Recursion (int32, wrapping)
	// Naive Recursion (int64, wrapping)
	// Naive Recursion (int32, overflow-checked)
}

// ExampleDefaultFactory demonstrates looking up a calculator by name.
func ExampleDefaultFactory() {
	factory := NewDefaultFactory()
	fmt.Println(factory.List())

	calc, err := factory.Get(AlgoNaive)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result, err := calc.Calculate(context.Background(), 10)
	if err != nil {
		fmt.Printf("Calculation error: %v\n", err)
		return
	}
	fmt.Println(result)
	// Output:
	// [checked naive naive64]
	// 55
}

// Example_smallIndices shows that every index below 3 yields 1.
func Example_smallIndices() {
	for _, n := range []int32{-4, 0, 1, 2, 3, 7} {
		fmt.Printf("Fibonacci(%d) = %d\n", n, Recursive32(n))
	}
	// Output:
	// Fibonacci(-4) = 1
	// Fibonacci(0) = 1
	// Fibonacci(1) = 1
	// Fibonacci(2) = 1
	// Fibonacci(3) = 2
	// Fibonacci(7) = 13
}
