package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/recipsum/internal/orchestration"
	"github.com/agbru/recipsum/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// 200ms keeps terminal updates cheap without looking stalled.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the progress display to be decoupled from a specific spinner
// implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to keep redraws in sync
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress consumes the progress channel and renders a spinner with a
// consolidated progress bar averaging all running strategies. It runs until
// the channel is closed and must be launched in its own goroutine with wg
// accounting for it.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numReducers int, out io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numReducers)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	render := func(avg float64) {
		sp.UpdateSuffix(fmt.Sprintf(" [%s] %5.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
	}
	render(0)

	for {
		select {
		case u, ok := <-progressChan:
			if !ok {
				render(agg.Average())
				return
			}
			agg.Update(u)
		case <-ticker.C:
			render(agg.Average())
		}
	}
}

// progressBar generates a string representing a textual progress bar.
func progressBar(fraction float64, length int) string {
	if fraction > 1.0 {
		fraction = 1.0
	}
	if fraction < 0.0 {
		fraction = 0.0
	}
	count := int(fraction * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
