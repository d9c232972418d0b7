package bounds

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/fibtime/internal/errors"
)

func TestCeiling_Check(t *testing.T) {
	t.Parallel()
	enforced := Ceiling{Max: 40, Enforce: true}
	documented := Ceiling{Max: 50, Enforce: false}

	tests := []struct {
		name    string
		ceiling Ceiling
		n       int64
		wantErr bool
	}{
		{"At the ceiling", enforced, 40, false},
		{"One above the ceiling", enforced, 41, true},
		{"Far above the ceiling", enforced, math.MaxInt32, true},
		{"Zero has no lower bound", enforced, 0, false},
		{"Negative has no lower bound", enforced, -7, false},
		{"Unenforced accepts anything", documented, math.MaxInt64, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ceiling.Check(tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var boundErr *apperrors.BoundError
			if !errors.As(err, &boundErr) {
				t.Fatalf("expected *BoundError, got %T", err)
			}
			if boundErr.Value != tt.n || boundErr.Max != tt.ceiling.Max {
				t.Errorf("BoundError = %+v, want Value=%d Max=%d", boundErr, tt.n, tt.ceiling.Max)
			}
		})
	}
}
