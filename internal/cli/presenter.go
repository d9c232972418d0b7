package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/format"
	"github.com/agbru/fibtime/internal/orchestration"
	"github.com/agbru/fibtime/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct {
	// Quiet drops the table and the success verdicts and prints the selected
	// value bare.
	Quiet bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays one row per algorithm with its value,
// duration and status. Padding is computed on the plain text so that color
// codes do not break the alignment.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, valueWidth, durationWidth := len("Algorithm"), len("Value"), len("Duration")
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		valueWidth = max(valueWidth, len(valueCell(res)))
		durationWidth = max(durationWidth, len(durationCell(res.Duration)))
	}

	fmt.Fprintf(out, "%s%s   %s%s   %s%s   %s\n",
		ui.Dim("Algorithm"), padRight("", nameWidth-len("Algorithm")),
		ui.Dim("Value"), padRight("", valueWidth-len("Value")),
		ui.Dim("Duration"), padRight("", durationWidth-len("Duration")),
		ui.Dim("Status"))

	for _, res := range results {
		status := ui.Success("Success")
		if res.Err != nil {
			status = ui.Error(fmt.Sprintf("Failure (%v)", res.Err))
		}
		value := valueCell(res)
		duration := durationCell(res.Duration)
		fmt.Fprintf(out, "%s%s   %s%s   %s%s   %s\n",
			ui.Accent(res.Name), padRight("", nameWidth-len(res.Name)),
			value, padRight("", valueWidth-len(value)),
			duration, padRight("", durationWidth-len(duration)),
			status)
	}
}

func valueCell(res orchestration.CalculationResult) string {
	if res.Err != nil {
		return "-"
	}
	return format.FormatNumberString(strconv.FormatInt(res.Value, 10))
}

func durationCell(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentStatus prints the "Global Status" line. In quiet mode only the
// failing verdicts are printed, without the leading blank line.
func (p CLIResultPresenter) PresentStatus(status orchestration.ComparisonStatus, n int64, out io.Writer) {
	var line string
	switch status {
	case orchestration.StatusConsistent:
		line = ui.Success("Global Status: Success. All valid results are consistent.")
	case orchestration.StatusBeyondExactRange:
		line = ui.Success(fmt.Sprintf("Global Status: Success. Results differ because n=%d exceeds the exact range of the narrower widths.", n))
	case orchestration.StatusMismatch:
		line = ui.Error("Global Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.")
	case orchestration.StatusFailure:
		line = ui.Error("Global Status: Failure. No algorithm could complete the calculation.")
	default:
		return
	}

	if p.Quiet {
		if status == orchestration.StatusMismatch || status == orchestration.StatusFailure {
			fmt.Fprintln(out, line)
		}
		return
	}
	fmt.Fprintf(out, "\n%s\n", line)
}

// PresentResult displays the standard report for the selected result, or
// the bare value in quiet mode.
func (p CLIResultPresenter) PresentResult(result orchestration.CalculationResult, n int64, out io.Writer) {
	if p.Quiet {
		DisplayQuietResult(out, result.Value)
		return
	}
	DisplayReport(out, n, result.Value, result.Duration.Milliseconds())
}

// HandleError prints a calculation failure and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, ui.Colors{})
}
