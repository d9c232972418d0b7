package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/orchestration"
)

func TestCLIResultPresenter_PresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.CalculationResult{
		{Name: "Naive Recursion (int64, wrapping)", Bits: 64, Value: 2971215073, Duration: 1200 * time.Millisecond},
		{Name: "Naive Recursion (int32, wrapping)", Bits: 32, Value: -1323752223, Duration: 900 * time.Millisecond},
		{Name: "Checked", Bits: 32, Err: errors.New("overflow")},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()

	for _, want := range []string{
		"--- Comparison Summary ---",
		"Algorithm",
		"2,971,215,073",
		"-1,323,752,223",
		"1.2s",
		"900ms",
		"Success",
		"Failure (overflow)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q in:\n%s", want, output)
		}
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, header and 3 rows, got %d lines:\n%s", len(lines), output)
	}
	// Without colors every Value column starts at the same offset.
	col := strings.Index(lines[1], "Value")
	for _, row := range lines[2:] {
		if row[col-3:col] != "   " {
			t.Errorf("row %q is not aligned on column %d", row, col)
		}
	}
}

func TestCLIResultPresenter_PresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(orchestration.CalculationResult{Value: 13, Duration: 1999 * time.Microsecond}, 7, &buf)

	want := "\nFibonacci(7) = 13\nelapsed time: 1 ms.\n\n"
	if buf.String() != want {
		t.Errorf("PresentResult() = %q, want %q", buf.String(), want)
	}
}

func TestCLIResultPresenter_PresentStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		status    orchestration.ComparisonStatus
		quiet     bool
		wantText  string
		wantEmpty bool
	}{
		{"Consistent", orchestration.StatusConsistent, false, "\nGlobal Status: Success. All valid results are consistent.\n", false},
		{"Beyond exact range", orchestration.StatusBeyondExactRange, false, "n=47 exceeds the exact range", false},
		{"Mismatch", orchestration.StatusMismatch, false, "\nGlobal Status: CRITICAL ERROR!", false},
		{"Failure", orchestration.StatusFailure, false, "\nGlobal Status: Failure.", false},
		{"Quiet hides success", orchestration.StatusConsistent, true, "", true},
		{"Quiet hides expected divergence", orchestration.StatusBeyondExactRange, true, "", true},
		{"Quiet keeps mismatch", orchestration.StatusMismatch, true, "Global Status: CRITICAL ERROR!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			CLIResultPresenter{Quiet: tt.quiet}.PresentStatus(tt.status, 47, &buf)
			if tt.wantEmpty {
				if buf.Len() != 0 {
					t.Errorf("expected no output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.wantText) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.wantText)
			}
			if tt.quiet && strings.HasPrefix(buf.String(), "\n") {
				t.Errorf("quiet output should not start with a blank line: %q", buf.String())
			}
		})
	}
}

func TestCLIResultPresenter_Quiet(t *testing.T) {
	t.Parallel()
	presenter := CLIResultPresenter{Quiet: true}
	var buf bytes.Buffer

	presenter.PresentComparisonTable([]orchestration.CalculationResult{{Name: "naive", Bits: 32, Value: 55}}, &buf)
	presenter.PresentResult(orchestration.CalculationResult{Value: 55, Duration: time.Second}, 10, &buf)

	if buf.String() != "55\n" {
		t.Errorf("quiet presenter wrote %q, want %q", buf.String(), "55\n")
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"Timeout", apperrors.TimeoutError{Operation: "naive", Limit: time.Second}, apperrors.ExitErrorTimeout, "timed out after 1s"},
		{"Canceled", context.Canceled, apperrors.ExitErrorCanceled, "Calculation canceled."},
		{"Generic", errors.New("boom"), apperrors.ExitErrorGeneric, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if code := (CLIResultPresenter{}).HandleError(tt.err, 0, &buf); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.wantText) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.wantText)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	if got := padRight("ab", 3); got != "ab   " {
		t.Errorf("padRight() = %q", got)
	}
	if got := padRight("ab", -1); got != "ab" {
		t.Errorf("padRight() with negative length = %q", got)
	}
}
