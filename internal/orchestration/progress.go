package orchestration

import (
	"sync"

	"github.com/agbru/recipsum/internal/progress"
)

// ProgressAggregator combines per-reducer completion fractions into one
// overall figure. Both the CLI spinner and the quiet-mode reporter use it to
// avoid duplicating the aggregation logic.
type ProgressAggregator struct {
	mu          sync.Mutex
	fractions   []float64
	numReducers int
}

// NewProgressAggregator creates an aggregator for the given number of
// reducers. Returns nil if numReducers <= 0.
func NewProgressAggregator(numReducers int) *ProgressAggregator {
	if numReducers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		fractions:   make([]float64, numReducers),
		numReducers: numReducers,
	}
}

// Update records a single progress update and returns the new average
// across all reducers. Out-of-range indices and regressing fractions are
// ignored; progress within one reducer is monotonic.
func (a *ProgressAggregator) Update(u progress.Update) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if u.ReducerIndex >= 0 && u.ReducerIndex < a.numReducers && u.Value > a.fractions[u.ReducerIndex] {
		a.fractions[u.ReducerIndex] = u.Value
	}
	return a.averageLocked()
}

// Average returns the current average without recording an update.
func (a *ProgressAggregator) Average() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.averageLocked()
}

func (a *ProgressAggregator) averageLocked() float64 {
	var total float64
	for _, f := range a.fractions {
		total += f
	}
	return total / float64(a.numReducers)
}

// NumReducers returns the number of reducers being tracked.
func (a *ProgressAggregator) NumReducers() int { return a.numReducers }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan progress.Update) {
	for range progressChan {
	}
}
