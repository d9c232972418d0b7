package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Width Limits
// ─────────────────────────────────────────────────────────────────────────────
//
// Largest indices whose Fibonacci number is representable at each signed
// width. Above these the wrapping strategies return Fib(n) modulo 2^bits
// reinterpreted as a signed value.

const (
	// MaxExactN32 is the largest n with Fib(n) <= math.MaxInt32 (1836311903).
	MaxExactN32 = 46

	// MaxExactN64 is the largest n with Fib(n) <= math.MaxInt64
	// (7540113804746346429).
	MaxExactN64 = 92
)

// MaxExactN returns the largest exact index for a width, or 0 for widths
// without a registered limit.
func MaxExactN(bits int) int64 {
	switch bits {
	case 32:
		return MaxExactN32
	case 64:
		return MaxExactN64
	}
	return 0
}
