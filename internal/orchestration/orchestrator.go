package orchestration

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/recipsum/internal/errors"
	"github.com/agbru/recipsum/internal/progress"
	"github.com/agbru/recipsum/internal/reduce"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// reduction goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 16

// ComparisonEpsilon is the relative tolerance used when validating
// consistency across strategies. Summation order differs between
// strategies, so exact equality is not expected for well-conditioned
// inputs; agreement within this epsilon is.
const ComparisonEpsilon = 1e-9

// ExecuteReductions orchestrates the concurrent execution of one or more
// reduction strategies over the same shared input.
//
// It manages the lifecycle of the reduction goroutines, collects their
// results, and coordinates the display of progress updates. This function is
// the core of the application's concurrency model: every strategy runs in
// its own goroutine, each internally fanning out further through the
// injected scheduler.
func ExecuteReductions(ctx context.Context, reducers []reduce.Reducer, input []float64, opts reduce.Options, reporter ProgressReporter, out io.Writer) []ReductionResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]ReductionResult, len(reducers))
	progressChan := make(chan progress.Update, len(reducers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(reducers), out)

	tracer := otel.Tracer("recipsum/orchestration")

	for i, red := range reducers {
		idx, reducer := i, red
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "reduce")
			span.SetAttributes(
				attribute.String("strategy", reducer.Name()),
				attribute.Int("input.size", len(input)),
			)
			defer span.End()

			report := func(fraction float64) {
				select {
				case progressChan <- progress.Update{ReducerIndex: idx, Value: fraction}:
				default:
					// Dropping an update is preferable to stalling a leaf.
				}
			}

			startTime := time.Now()
			sum, err := reducer.Reduce(spanCtx, input, report, opts)
			if err != nil {
				span.RecordError(err)
			}
			results[idx] = ReductionResult{
				Name: reducer.Name(), Sum: sum, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// resultsConsistent reports whether two sums agree within ComparisonEpsilon.
// Poisoned results must agree in kind: NaN matches only NaN, and infinities
// must match in sign.
func resultsConsistent(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= ComparisonEpsilon*scale
}

// AnalyzeComparisonResults processes the results from multiple strategies
// and generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful reductions, and displays a comparative table. It handles the
// logic for determining global success or failure based on the individual
// outcomes.
//
// Returns an exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []ReductionResult, presOpts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *ReductionResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the reduction.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !resultsConsistent(res.Sum, firstValidResult.Sum) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the strategies.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, presOpts, out)
	return apperrors.ExitSuccess
}
