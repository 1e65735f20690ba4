package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/metrics"
	"github.com/agbru/kmul/internal/orchestration"
	"github.com/agbru/kmul/internal/sysmon"
	"github.com/agbru/kmul/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner for ongoing multiplications.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
)

// PresentComparisonTable displays algorithm names, durations and status.
// Cells are padded on their rendered width so styled text stays aligned.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.MultiplicationResult, out io.Writer) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	rows := make([][3]string, 0, len(results))
	for _, res := range results {
		status := styles.OK.Render("✅ Success")
		if res.Err != nil {
			status = styles.Fail.Render(fmt.Sprintf("❌ Failure (%v)", res.Err))
		}
		rows = append(rows, [3]string{
			styles.Name.Render(res.Name),
			styles.Duration.Render(formatDuration(res.Duration)),
			status,
		})
	}

	header := [3]string{
		styles.Header.Render("Algorithm"),
		styles.Header.Render("Duration"),
		styles.Header.Render("Status"),
	}
	var widths [2]int
	for _, r := range append([][3]string{header}, rows...) {
		widths[0] = max(widths[0], lipgloss.Width(r[0]))
		widths[1] = max(widths[1], lipgloss.Width(r[1]))
	}

	for _, r := range append([][3]string{header}, rows...) {
		fmt.Fprintf(out, "%s   %s   %s\n", padRight(r[0], widths[0]), padRight(r[1], widths[1]), r[2])
	}
}

// padRight pads s with spaces up to width rendered columns.
func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return FormatExecutionDuration(d)
}

// PresentResult displays the agreed product.
func (CLIResultPresenter) PresentResult(result orchestration.MultiplicationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Product)
		return
	}
	DisplayResult(result, opts, out)
}

// FormatDuration formats a duration with FormatExecutionDuration.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return FormatExecutionDuration(d)
}

// HandleError handles multiplication errors and returns an exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// DisplayResult prints the product's size and value. Long values are
// truncated unless opts.Verbose is set; opts.Details adds the timing of
// the reported multiplier.
func DisplayResult(result orchestration.MultiplicationResult, opts orchestration.PresentationOptions, out io.Writer) {
	styles := ui.CurrentStyles()
	product := result.Product

	fmt.Fprintf(out, "\n%s %s words (%s × %s), %s bits.\n",
		styles.Label.Render("Product size:"),
		styles.Value.Render(fmt.Sprintf("%d", len(product))),
		styles.Value.Render(fmt.Sprintf("%d", opts.OperandWords[0])),
		styles.Value.Render(fmt.Sprintf("%d", opts.OperandWords[1])),
		styles.Value.Render(fmt.Sprintf("%d", product.BitLen())))

	if opts.Details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "Multiplier          : %s\n", styles.Name.Render(result.Name))
		fmt.Fprintf(out, "Multiplication time : %s\n", styles.Duration.Render(formatDuration(result.Duration)))
		fmt.Fprintf(out, "Significant words   : %d\n", len(product.Trim()))
	}

	hex := product.Hex()
	if !opts.Verbose {
		hex = TruncateHex(hex)
	}
	fmt.Fprintf(out, "%s 0x%s\n", styles.Label.Render("Product:"), hex)
}

// DisplayMemoryStats shows memory statistics of a run.
func DisplayMemoryStats(delta metrics.MemoryDelta, peak metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", FormatBytes(peak.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseNs)/1e6)
}

// DisplaySystemStats prints a host-wide CPU and memory snapshot.
func DisplaySystemStats(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nSystem:\n")
	fmt.Fprintf(out, "  CPU usage:       %.1f%%\n", s.CPUPercent)
	fmt.Fprintf(out, "  Memory usage:    %.1f%% of %s\n", s.MemPercent, FormatBytes(s.MemTotal))
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
