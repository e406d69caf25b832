package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a dataset for display before a run.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Describe computes summary statistics for the vector. An empty vector
// yields a zero-valued Stats.
func Describe(data []float64) Stats {
	if len(data) == 0 {
		return Stats{}
	}
	return Stats{
		Count: len(data),
		Min:   floats.Min(data),
		Max:   floats.Max(data),
		Mean:  stat.Mean(data, nil),
	}
}

// String renders the stats on a single line.
func (s Stats) String() string {
	if s.Count == 0 {
		return "empty dataset"
	}
	return fmt.Sprintf("n=%d min=%.4g max=%.4g mean=%.4g", s.Count, s.Min, s.Max, s.Mean)
}
