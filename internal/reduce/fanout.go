package reduce

import (
	"context"
	"fmt"

	"github.com/eapache/queue"

	"github.com/agbru/recipsum/internal/progress"
)

// fixedFanoutSum partitions the input into numTasks contiguous chunks,
// computes chunk 0 in the calling goroutine and the rest as scheduled
// tasks. All concurrent chunks are submitted before any are awaited, so
// they overlap fully instead of running serially. Awaiting the FIFO of
// futures in submission order keeps the final accumulation in task-index
// order, which makes the result reproducible for a fixed numTasks.
//
// Unlike fork/join, chunks are never subdivided: granularity is entirely
// caller-controlled through numTasks.
func fixedFanoutSum(input []float64, numTasks int, sched Scheduler, leafDone func(int)) float64 {
	if numTasks < 1 {
		panic(fmt.Sprintf("reduce: fixed fan-out requires numTasks >= 1, got %d", numTasks))
	}
	ranges := PartitionRanges(numTasks, len(input))

	pending := queue.New()
	for _, chunk := range ranges[1:] {
		r := chunk
		pending.Add(sched.Submit(func() float64 {
			sum := sumRange(input, r)
			if leafDone != nil {
				leafDone(r.Len())
			}
			return sum
		}))
	}

	// Chunk 0 is the caller's own share; no task object is created for
	// work the calling goroutine performs anyway.
	sum := sumRange(input, ranges[0])
	if leafDone != nil {
		leafDone(ranges[0].Len())
	}

	for pending.Length() > 0 {
		sum += pending.Remove().(*Future).Await()
	}
	return sum
}

// FixedFanoutSum computes the reciprocal sum of input split across exactly
// numTasks top-level chunks. Panics if numTasks < 1. Excess tasks beyond
// the input length receive empty chunks and contribute zero.
func FixedFanoutSum(input []float64, numTasks int) float64 {
	return fixedFanoutSum(input, numTasks, GoroutineScheduler{}, nil)
}

// FixedFanoutReducer is the Reducer wrapper around fixed fan-out chunking.
type FixedFanoutReducer struct{}

// Name returns the strategy display name.
func (FixedFanoutReducer) Name() string { return "Fixed Fan-Out" }

// Reduce runs the fixed fan-out reduction with the configured task count
// and scheduler. The context is consulted before work starts; a reduction
// that has begun always runs to completion.
func (FixedFanoutReducer) Reduce(ctx context.Context, input []float64, report progress.Callback, opts Options) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return fixedFanoutSum(input, opts.numTasks(), opts.scheduler(), leafProgress(report, len(input))), nil
}
