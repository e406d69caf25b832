package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/recipsum/internal/progress"
)

// ReductionResult encapsulates the outcome of a single reduction strategy.
// It serves as the shared domain type between orchestration and presentation
// layers.
type ReductionResult struct {
	// Name is the identifier of the strategy used (e.g., "Fork/Join").
	Name string
	// Sum is the computed reciprocal sum. It is meaningful only when Err is
	// nil; a ±Inf or NaN value indicates a zero-poisoned input, not an error.
	Sum float64
	// Duration is the time taken to complete the reduction.
	Duration time.Duration
	// Err contains any error that occurred during the reduction.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Size    int
	Verbose bool
}

// ProgressReporter defines the interface for displaying reduction progress.
// It decouples the orchestration layer from the presentation layer:
// implementations handle the visual representation (spinners, bars) while
// orchestration focuses on coordinating the reductions.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and runs until
	// progressChan is closed.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numReducers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter implementing ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numReducers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numReducers int, out io.Writer) {
	f(wg, progressChan, numReducers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything. Useful for
// quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting reduction results,
// allowing different output formats without modifying orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the strategy comparison summary.
	PresentComparisonTable(results []ReductionResult, out io.Writer)
	// PresentResult displays the final reduction result.
	PresentResult(result ReductionResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler maps reduction errors to process exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
