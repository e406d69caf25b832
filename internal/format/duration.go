package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatThroughput renders an elements-per-second rate with a unit suffix.
// Rates below one thousand are shown raw, then scaled to K or M elements.
func FormatThroughput(elements int, d time.Duration) string {
	if d <= 0 || elements <= 0 {
		return "n/a"
	}
	rate := float64(elements) / d.Seconds()
	switch {
	case rate >= 1e6:
		return fmt.Sprintf("%.2f Melem/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.2f Kelem/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f elem/s", rate)
	}
}
