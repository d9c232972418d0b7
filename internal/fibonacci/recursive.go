package fibonacci

import (
	"errors"
	"math"
)

// ErrOverflow is returned by the checked recursion when an intermediate sum
// leaves the range of the integer width.
var ErrOverflow = errors.New("integer overflow")

// Recursive32 computes Fib(n) with naive double recursion in 32-bit signed
// arithmetic. Every n < 3, including zero and negative values, yields 1.
// Sums that leave the int32 range wrap silently, so results are only
// mathematically correct up to Fib(46).
func Recursive32(n int32) int32 {
	if n >= 3 {
		return Recursive32(n-1) + Recursive32(n-2)
	}
	return 1
}

// Recursive64 is Recursive32 at 64-bit width. It is exact up to Fib(92).
func Recursive64(n int64) int64 {
	if n >= 3 {
		return Recursive64(n-1) + Recursive64(n-2)
	}
	return 1
}

// RecursiveChecked32 follows the same recursion as Recursive32 but reports
// ErrOverflow instead of wrapping. The call tree is identical, so the timing
// profile matches Recursive32 until the first overflow.
func RecursiveChecked32(n int32) (int32, error) {
	if n < 3 {
		return 1, nil
	}
	a, err := RecursiveChecked32(n - 1)
	if err != nil {
		return 0, err
	}
	b, err := RecursiveChecked32(n - 2)
	if err != nil {
		return 0, err
	}
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(sum), nil
}

// CallCount returns how many invocations the naive recursion performs for n.
// For n >= 3 this is 2*Fib(n)-1; it is computed iteratively so that callers
// can describe the work without repeating it. Counts beyond the uint64 range
// saturate at math.MaxUint64.
func CallCount(n int64) uint64 {
	if n < 3 {
		return 1
	}
	// calls(k) = calls(k-1) + calls(k-2) + 1 with calls(1) = calls(2) = 1.
	prev, curr := uint64(1), uint64(1)
	for k := int64(3); k <= n; k++ {
		next := prev + curr + 1
		if next < curr {
			return math.MaxUint64
		}
		prev, curr = curr, next
	}
	return curr
}

// FitsWidth reports whether n is representable as a signed integer of the
// given bit width.
func FitsWidth(n int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	limit := int64(1) << (bits - 1)
	return n >= -limit && n < limit
}
