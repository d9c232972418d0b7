package fibonacci

import (
	"testing"
)

// FuzzWidthConsistency checks that the three strategies agree on small
// indices, where every width is exact. Overflow at n=47 is covered by
// TestRecursive_LargeIndices.
func FuzzWidthConsistency(f *testing.F) {
	for _, seed := range []int32{-1000, -1, 0, 1, 2, 3, 10, 24} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, n int32) {
		// Naive recursion is exponential; keep iterations quick.
		if n > 24 {
			return
		}

		wrapped := Recursive32(n)
		wide := Recursive64(int64(n))
		checked, err := RecursiveChecked32(n)
		if err != nil {
			t.Fatalf("RecursiveChecked32(%d) returned %v inside the exact range", n, err)
		}
		if checked != wrapped || int64(wrapped) != wide {
			t.Fatalf("n=%d: checked=%d wrapped=%d wide=%d", n, checked, wrapped, wide)
		}
		if wrapped < 1 {
			t.Fatalf("Fib(%d) = %d, want a positive value", n, wrapped)
		}
	})
}
