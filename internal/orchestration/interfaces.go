package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/kmul/internal/words"
)

// MultiplicationResult is the outcome of one multiplier run. It is the
// shared domain type between orchestration and presentation layers.
type MultiplicationResult struct {
	// Name is the display name of the multiplier (e.g., "Karatsuba").
	Name string
	// Product is the len(a)+len(b) word product. It is nil if an error occurred.
	Product words.Nat
	// Duration is the time taken by the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// ProgressUpdate reports that a multiplier started (Value 0) or finished
// (Value 1).
type ProgressUpdate struct {
	// CalculatorIndex is the position of the multiplier in the run.
	CalculatorIndex int
	// Name is the multiplier name.
	Name string
	// Value is the progress of that multiplier, 0.0 to 1.0.
	Value float64
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// OperandWords holds len(a) and len(b).
	OperandWords [2]int
	Verbose      bool
	Details      bool
	Quiet        bool
}

// ProgressReporter displays progress while multipliers run.
//
// DisplayProgress is called in its own goroutine, must drain progressChan
// until it is closed, and must call wg.Done before returning.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter presents comparison results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []MultiplicationResult, out io.Writer)
	// PresentResult displays the agreed product.
	PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer)
	// HandleError reports err and returns the exit code for it.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
