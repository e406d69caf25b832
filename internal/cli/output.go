// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/recipsum/internal/format"
	"github.com/agbru/recipsum/internal/metrics"
	"github.com/agbru/recipsum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full-precision result value.
	Verbose bool
}

// WriteResultToFile writes a reduction result to a file.
//
// Parameters:
//   - sum: The computed reciprocal sum.
//   - size: The number of input elements.
//   - duration: The reduction duration.
//   - algo: The strategy name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(sum float64, size int, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Reciprocal Sum Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Elements: %d\n", size)
	fmt.Fprintf(file, "# Throughput: %s\n", format.FormatThroughput(size, duration))
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "%.17g\n", sum)

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietResult(sum float64) string {
	return fmt.Sprintf("%.17g", sum)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, sum float64) {
	fmt.Fprintln(out, FormatQuietResult(sum))
}

// DisplayMemoryStats shows memory growth observed during a run.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap growth:     %s\n", metrics.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Sys growth:      %s\n", metrics.FormatBytes(delta.Sys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	if delta.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
	}
}

// ConfirmSaved prints the confirmation line after a result file was written.
func ConfirmSaved(path string, out io.Writer) {
	fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s\n", ui.ColorGreen(), path, ui.ColorReset())
}
