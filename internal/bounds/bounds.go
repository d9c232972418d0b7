// Package bounds validates the Fibonacci index against an upper ceiling.
package bounds

import apperrors "github.com/agbru/fibtime/internal/errors"

// Ceiling is the upper limit applied to n. Max is always shown in the
// prompt; it is only enforced when Enforce is set. There is no lower bound.
type Ceiling struct {
	Max     int64
	Enforce bool
}

// Check returns a *apperrors.BoundError when the ceiling is enforced and n
// exceeds it, nil otherwise.
func (c Ceiling) Check(n int64) error {
	if c.Enforce && n > c.Max {
		return &apperrors.BoundError{Value: n, Max: c.Max}
	}
	return nil
}
