package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/recipsum/internal/config"
	"github.com/agbru/recipsum/internal/reduce"
	"github.com/agbru/recipsum/internal/sysmon"
	"github.com/agbru/recipsum/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the dataset parameters, timeout, environment details, and the
// effective leaf threshold.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Summing reciprocals of %s%d%s elements (%s%s%s distribution, seed %d) with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), cfg.Size, ui.ColorReset(),
		ui.ColorPrimary(), cfg.Dist, ui.ColorReset(), cfg.Seed,
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorPrimary(), runtime.Version(), ui.ColorReset(),
		sysmon.Sample())

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = reduce.DefaultLeafThreshold
	}
	fmt.Fprintf(out, "Tuning: leaf threshold %s%d%s elements, %s%d%s fan-out tasks.\n",
		ui.ColorPrimary(), threshold, ui.ColorReset(),
		ui.ColorPrimary(), effectiveTasks(cfg.NumTasks), ui.ColorReset())
}

func effectiveTasks(n int) int {
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// PrintExecutionMode displays the execution mode (single strategy vs comparison).
//
// Parameters:
//   - reducers: The slice of reducers that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(reducers []reduce.Reducer, out io.Writer) {
	var modeDesc string
	if len(reducers) > 1 {
		modeDesc = "Parallel comparison of all strategies"
	} else {
		modeDesc = fmt.Sprintf("Single reduction with the %s%s%s strategy",
			ui.ColorGreen(), reducers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
