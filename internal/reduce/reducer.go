package reduce

import (
	"context"
	"runtime"

	"github.com/agbru/recipsum/internal/progress"
)

// Options carries the tunables shared by all reduction strategies. The zero
// value selects sensible defaults for every field.
type Options struct {
	// LeafThreshold is the fork/join leaf size. Zero or negative selects
	// DefaultLeafThreshold.
	LeafThreshold int
	// NumTasks is the fixed fan-out width. Values below 1 select
	// runtime.NumCPU().
	NumTasks int
	// Scheduler executes submitted tasks. Nil selects GoroutineScheduler.
	Scheduler Scheduler
}

func (o Options) leafThreshold() int {
	if o.LeafThreshold <= 0 {
		return DefaultLeafThreshold
	}
	return o.LeafThreshold
}

func (o Options) numTasks() int {
	if o.NumTasks < 1 {
		return runtime.NumCPU()
	}
	return o.NumTasks
}

func (o Options) scheduler() Scheduler {
	if o.Scheduler == nil {
		return GoroutineScheduler{}
	}
	return o.Scheduler
}

// Reducer is a single reciprocal-sum strategy. Implementations must be
// stateless: repeated calls over the same unmodified input yield identical
// results.
type Reducer interface {
	// Name returns the human-readable strategy identifier.
	Name() string
	// Reduce computes the reciprocal sum of input. report may be nil.
	// The context is consulted before work starts; reductions that have
	// begun run to completion and are never partially applied.
	Reduce(ctx context.Context, input []float64, report progress.Callback, opts Options) (float64, error)
}

// SequentialReducer is the Reducer wrapper around the single-pass baseline.
type SequentialReducer struct{}

// Name returns the strategy display name.
func (SequentialReducer) Name() string { return "Sequential" }

// Reduce computes the sum in one ascending pass on the calling goroutine.
func (SequentialReducer) Reduce(ctx context.Context, input []float64, report progress.Callback, _ Options) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sum := SequentialSum(input)
	if report != nil {
		report(1.0)
	}
	return sum, nil
}

// Strategy identifiers accepted on the command line and the HTTP API.
const (
	StrategySequential = "sequential"
	StrategyForkJoin   = "forkjoin"
	StrategyFanout     = "fanout"
)

// ReducerFactory resolves strategy identifiers to Reducer implementations.
type ReducerFactory interface {
	// Get returns the reducer registered under id, if any.
	Get(id string) (Reducer, bool)
	// GetAll returns every registered reducer in registration order.
	GetAll() []Reducer
	// List returns the registered identifiers in registration order.
	List() []string
}

type factoryEntry struct {
	id      string
	reducer Reducer
}

type defaultFactory struct {
	entries []factoryEntry
}

// NewDefaultFactory returns a factory with the built-in strategies
// registered: sequential, forkjoin, fanout.
func NewDefaultFactory() ReducerFactory {
	return &defaultFactory{entries: []factoryEntry{
		{StrategySequential, SequentialReducer{}},
		{StrategyForkJoin, ForkJoinReducer{}},
		{StrategyFanout, FixedFanoutReducer{}},
	}}
}

func (f *defaultFactory) Get(id string) (Reducer, bool) {
	for _, e := range f.entries {
		if e.id == id {
			return e.reducer, true
		}
	}
	return nil, false
}

func (f *defaultFactory) GetAll() []Reducer {
	all := make([]Reducer, len(f.entries))
	for i, e := range f.entries {
		all[i] = e.reducer
	}
	return all
}

func (f *defaultFactory) List() []string {
	ids := make([]string, len(f.entries))
	for i, e := range f.entries {
		ids[i] = e.id
	}
	return ids
}
