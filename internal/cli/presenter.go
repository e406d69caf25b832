package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	apperrors "github.com/agbru/recipsum/internal/errors"
	"github.com/agbru/recipsum/internal/format"
	"github.com/agbru/recipsum/internal/orchestration"
	"github.com/agbru/recipsum/internal/progress"
	"github.com/agbru/recipsum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during reductions.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing reductions.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numReducers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numReducers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for reduction results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with
// strategy names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.ReductionResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 8 // "Strategy" header length
	maxDurationLen := 8
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := presentedDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight("", maxNameLen-8),
		ui.ColorBold(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorBold(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success (sum=%.12g)%s", ui.ColorGreen(), res.Sum, ui.ColorReset())
		}
		duration := presentedDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func presentedDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns a string of spaces with the given length appended to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final reduction result with throughput and,
// in verbose mode, the full-precision sum.
func (CLIResultPresenter) PresentResult(result orchestration.ReductionResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\nReciprocal sum of %s%d%s elements: %s%.12g%s\n",
		ui.ColorPrimary(), opts.Size, ui.ColorReset(),
		ui.ColorGreen(), result.Sum, ui.ColorReset())
	if math.IsInf(result.Sum, 0) || math.IsNaN(result.Sum) {
		fmt.Fprintf(out, "%sInput contained at least one zero element; the sum is not finite.%s\n",
			ui.ColorYellow(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Fastest strategy: %s%s%s in %s%s%s (%s)\n",
		ui.ColorPrimary(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), presentedDuration(result.Duration), ui.ColorReset(),
		format.FormatThroughput(opts.Size, result.Duration))
	if opts.Verbose {
		fmt.Fprintf(out, "Full precision: %.17g\n", result.Sum)
	}
}

// HandleError maps a reduction error to an exit code and prints a matching
// message.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimed out after %s.%s\n", ui.ColorRed(), presentedDuration(duration), ui.ColorReset())
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled by user.%s\n", ui.ColorYellow(), ui.ColorReset())
		return apperrors.ExitErrorCanceled
	default:
		var timeoutErr apperrors.TimeoutError
		if errors.As(err, &timeoutErr) {
			fmt.Fprintf(out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return apperrors.ExitErrorTimeout
		}
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(out, "%sConfiguration error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return apperrors.ExitErrorConfig
		}
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
}
