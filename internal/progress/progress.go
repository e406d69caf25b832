// Package progress defines the progress reporting primitives shared by the
// reduction strategies and the presentation layers.
package progress

// Update carries a single progress report from a running reducer to the
// display layer.
type Update struct {
	// ReducerIndex identifies which concurrently running reducer sent the
	// update.
	ReducerIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}

// Callback receives completion fractions from a running reduction.
// Implementations must be safe for concurrent use: fork/join leaves complete
// on multiple goroutines.
type Callback func(fraction float64)

// Nop is a Callback that discards updates.
func Nop(float64) {}
