package reduce

import (
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Task is a unit of reduction work producing a single partial sum.
type Task func() float64

// Future is the one-shot completion handle for a submitted Task. The value
// crosses goroutines through a buffered channel, written exactly once by the
// task and read exactly once by its creator; the channel transfer gives the
// creator the happens-before edge it needs to observe the result.
type Future struct {
	done chan float64
}

func newFuture() *Future {
	return &Future{done: make(chan float64, 1)}
}

// complete records the task's value. Called exactly once per Future.
func (f *Future) complete(v float64) { f.done <- v }

// Await blocks until the task has completed and returns its partial sum.
// Await must be called at most once per Future.
func (f *Future) Await() float64 { return <-f.done }

// Scheduler abstracts how submitted tasks are executed. Reduction strategies
// require only eventual execution of every submitted task and make no
// fairness assumptions beyond that. Passing the scheduler in explicitly,
// rather than relying on ambient process-wide state, lets tests inject
// SerialScheduler to assert sequential equivalence deterministically.
type Scheduler interface {
	// Submit schedules t for execution and returns its completion handle.
	Submit(t Task) *Future
}

// GoroutineScheduler runs each task in its own goroutine, delegating
// placement to the Go runtime's work-stealing scheduler. It is the default:
// fork/join creates one task per split and the leaf threshold bounds the
// total at O(n/threshold), so per-task goroutines stay cheap.
type GoroutineScheduler struct{}

// Submit starts t in a new goroutine.
func (GoroutineScheduler) Submit(t Task) *Future {
	f := newFuture()
	go func() {
		f.complete(t())
	}()
	return f
}

// SerialScheduler executes tasks inline at submission time, before Submit
// returns. It removes all concurrency while preserving the strategies'
// summation order, which makes their output reproducible in tests.
type SerialScheduler struct{}

// Submit runs t in the calling goroutine and returns an already-completed
// handle.
func (SerialScheduler) Submit(t Task) *Future {
	f := newFuture()
	f.complete(t())
	return f
}

// BoundedScheduler caps the number of concurrently running tasks with a
// weighted semaphore. When the limit is reached, Submit runs the task
// inline instead of queueing it, so a recursive split that cannot be
// scheduled is absorbed by its parent's goroutine. Inline fallback keeps
// recursive submission deadlock-free: no task ever waits for a pool slot
// while holding one.
type BoundedScheduler struct {
	sem *semaphore.Weighted
}

// NewBoundedScheduler creates a scheduler allowing at most limit tasks to
// run concurrently. A non-positive limit defaults to runtime.NumCPU().
func NewBoundedScheduler(limit int) *BoundedScheduler {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return &BoundedScheduler{sem: semaphore.NewWeighted(int64(limit))}
}

// Submit runs t in a new goroutine when a slot is available, inline
// otherwise.
func (s *BoundedScheduler) Submit(t Task) *Future {
	f := newFuture()
	if s.sem.TryAcquire(1) {
		go func() {
			defer s.sem.Release(1)
			f.complete(t())
		}()
		return f
	}
	f.complete(t())
	return f
}
