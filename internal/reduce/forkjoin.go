package reduce

import (
	"context"
	"sync/atomic"

	"github.com/agbru/recipsum/internal/progress"
)

// DefaultLeafThreshold is the range size at or below which a fork/join task
// computes its partial sum sequentially instead of splitting further.
//
// The threshold trades parallelism granularity against scheduling overhead:
// too low creates excessive task churn, too high limits parallelism on
// large inputs. 50000 is a tunable constant, not derived from core count;
// config can override it per run.
const DefaultLeafThreshold = 50000

// forkJoinTask is one node of the fork/join task tree, bound to exactly one
// range of the shared input. Tasks are ephemeral: created per split, their
// value consumed by the parent, then discarded.
type forkJoinTask struct {
	input     []float64
	r         Range
	threshold int
	sched     Scheduler
	leafDone  func(elements int)
}

// compute reduces the task's range. Ranges at or below the threshold are
// summed directly (LEAF). Larger ranges split at the midpoint (SPLIT): the
// left half is submitted to the scheduler while the right half is computed
// in the current control flow, then the left result is joined. Submitting
// only the left branch creates exactly one new concurrent task per split,
// keeping the total task count O(n/threshold) instead of doubling it by
// spawning both branches.
func (t *forkJoinTask) compute() float64 {
	if t.r.Len() <= t.threshold {
		sum := sumRange(t.input, t.r)
		if t.leafDone != nil {
			t.leafDone(t.r.Len())
		}
		return sum
	}

	// Integer truncation biases the split toward the left half by at most
	// one element on odd lengths; preserved for output determinism.
	mid := (t.r.Start + t.r.End) / 2
	left := &forkJoinTask{input: t.input, r: Range{t.r.Start, mid}, threshold: t.threshold, sched: t.sched, leafDone: t.leafDone}
	right := &forkJoinTask{input: t.input, r: Range{mid, t.r.End}, threshold: t.threshold, sched: t.sched, leafDone: t.leafDone}

	leftFuture := t.sched.Submit(left.compute)
	rightSum := right.compute()
	leftSum := leftFuture.Await()

	return leftSum + rightSum
}

// forkJoinSum runs the fork/join reduction over the full input with the
// given threshold and scheduler. leafDone, when non-nil, is invoked with the
// element count of every completed leaf; it runs on multiple goroutines.
func forkJoinSum(input []float64, threshold int, sched Scheduler, leafDone func(int)) float64 {
	if threshold < 1 {
		threshold = 1
	}
	task := &forkJoinTask{input: input, r: FullRange(input), threshold: threshold, sched: sched, leafDone: leafDone}
	return task.compute()
}

// ForkJoinSum computes the reciprocal sum of input by recursive fork/join
// splitting with DefaultLeafThreshold, running on per-goroutine tasks.
// The input length is expected to be even; odd lengths are not validated
// and the resulting split sizes are unspecified.
func ForkJoinSum(input []float64) float64 {
	return forkJoinSum(input, DefaultLeafThreshold, GoroutineScheduler{}, nil)
}

// leafProgress adapts a fraction callback to per-leaf element counts.
// Leaves complete on multiple goroutines, so the running count is atomic.
// Returns nil when no reporting is wanted.
func leafProgress(report progress.Callback, total int) func(int) {
	if report == nil || total == 0 {
		return nil
	}
	var done atomic.Int64
	return func(n int) {
		report(float64(done.Add(int64(n))) / float64(total))
	}
}

// ForkJoinReducer is the Reducer wrapper around fork/join splitting.
type ForkJoinReducer struct{}

// Name returns the strategy display name.
func (ForkJoinReducer) Name() string { return "Fork/Join" }

// Reduce runs the fork/join reduction with the configured leaf threshold
// and scheduler. The context is consulted before work starts; a reduction
// that has begun always runs to completion.
func (ForkJoinReducer) Reduce(ctx context.Context, input []float64, report progress.Callback, opts Options) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return forkJoinSum(input, opts.leafThreshold(), opts.scheduler(), leafProgress(report, len(input))), nil
}
