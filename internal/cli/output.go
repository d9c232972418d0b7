// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayQuietResult], [DisplayDetails].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatReport], [FormatQuietResult].
//
//   - Parse* functions convert user text to values without performing I/O.
//     Examples: [ParseIndex].

package cli

import (
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/agbru/fibtime/internal/fibonacci"
	"github.com/agbru/fibtime/internal/format"
	"github.com/agbru/fibtime/internal/metrics"
	"github.com/agbru/fibtime/internal/orchestration"
	"github.com/agbru/fibtime/internal/sysmon"
	"github.com/agbru/fibtime/internal/ui"
)

// FormatReport renders the result block: a blank line, the value line, the
// elapsed-time line and a closing blank line.
func FormatReport(n, value, elapsedMS int64) string {
	return fmt.Sprintf("\nFibonacci(%d) = %s\nelapsed time: %d ms.\n\n",
		n, ui.Accent(strconv.FormatInt(value, 10)), elapsedMS)
}

// DisplayReport writes the result block for Fib(n).
//
// Parameters:
//   - out: The writer for the report.
//   - n: The index that was computed.
//   - value: The computed Fibonacci value.
//   - elapsedMS: The measured duration in whole milliseconds.
func DisplayReport(out io.Writer, n, value, elapsedMS int64) {
	fmt.Fprint(out, FormatReport(n, value, elapsedMS))
}

// FormatQuietResult returns the bare value, for scripts.
func FormatQuietResult(value int64) string {
	return strconv.FormatInt(value, 10)
}

// DisplayQuietResult writes the bare value followed by a newline.
func DisplayQuietResult(out io.Writer, value int64) {
	fmt.Fprintln(out, FormatQuietResult(value))
}

// DisplayBoundViolation reports an index above the enforced ceiling. Nothing
// is computed in that case.
func DisplayBoundViolation(out io.Writer, err *apperrors.BoundError) {
	fmt.Fprintf(out, "\n%s\n", ui.Error(err.Error()))
}

// DetailsView gathers everything shown by DisplayDetails.
type DetailsView struct {
	N      int64
	Result orchestration.CalculationResult
	Memory metrics.MemorySnapshot
	System sysmon.Stats
}

// DisplayDetails writes the algorithm, timing and resource summary shown
// with --details.
func DisplayDetails(out io.Writer, v DetailsView) {
	exact := fibonacci.MaxExactN(v.Result.Bits)

	fmt.Fprintf(out, "%s\n", ui.Dim("--- Details ---"))
	fmt.Fprintf(out, "Algorithm:        %s\n", v.Result.Name)
	fmt.Fprintf(out, "Integer width:    %d bits (exact up to n = %d)\n", v.Result.Bits, exact)
	if v.N > exact {
		fmt.Fprintf(out, "                  %s\n", ui.Warning("value wrapped past the integer width"))
	}
	fmt.Fprintf(out, "Recursive calls:  %s\n", format.FormatCount(fibonacci.CallCount(v.N)))
	fmt.Fprintf(out, "Duration:         %s\n", format.FormatExecutionDuration(v.Result.Duration))

	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:      %s\n", format.FormatBytes(v.Memory.HeapAlloc))
	fmt.Fprintf(out, "  Obtained from OS: %s\n", format.FormatBytes(v.Memory.Sys))
	fmt.Fprintf(out, "  GC cycles:        %d\n", v.Memory.NumGC)
	fmt.Fprintf(out, "  GC pause total:   %.2fms\n", float64(v.Memory.PauseTotalNs)/1e6)
	fmt.Fprintf(out, "  Goroutines:       %d\n", v.Memory.NumGoroutine)

	fmt.Fprintf(out, "\nSystem:\n")
	fmt.Fprintf(out, "  Logical CPUs:     %d\n", v.System.LogicalCPUs)
	fmt.Fprintf(out, "  CPU usage:        %.1f%%\n", v.System.CPUPercent)
	if v.System.MemTotal > 0 {
		fmt.Fprintf(out, "  Memory usage:     %.1f%% of %s\n", v.System.MemPercent, format.FormatBytes(v.System.MemTotal))
	}
	fmt.Fprintln(out)
}
