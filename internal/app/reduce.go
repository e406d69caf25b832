package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/recipsum/internal/cli"
	"github.com/agbru/recipsum/internal/dataset"
	apperrors "github.com/agbru/recipsum/internal/errors"
	"github.com/agbru/recipsum/internal/metrics"
	"github.com/agbru/recipsum/internal/orchestration"
	"github.com/agbru/recipsum/internal/reduce"
)

// runReduce orchestrates the execution of the CLI reduction command.
func (a *Application) runReduce(ctx context.Context, out io.Writer) int {
	// Lifecycle: timeout plus SIGINT/SIGTERM cancellation
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	input, code := a.buildInput(out)
	if code != apperrors.ExitSuccess {
		return code
	}

	reducersToRun := orchestration.GetReducersToRun(a.Config.Algo, a.Factory)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		if a.Config.Verbose {
			fmt.Fprintf(out, "Dataset: %s\n", dataset.Describe(input))
		}
		cli.PrintExecutionMode(reducersToRun, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	opts := reduce.Options{
		LeafThreshold: a.Config.Threshold,
		NumTasks:      a.Config.NumTasks,
		Scheduler:     a.buildScheduler(),
	}

	memCollector := metrics.NewMemoryCollector()
	memBefore := memCollector.Snapshot()

	results := orchestration.ExecuteReductions(ctx, reducersToRun, input, opts, progressReporter, progressOut)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	exitCode := a.analyzeResultsWithOutput(results, len(input), outputCfg, out)

	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayMemoryStats(metrics.Delta(memBefore, memCollector.Snapshot()), out)
	}
	return exitCode
}

// buildInput loads or generates the dataset per the configuration.
func (a *Application) buildInput(out io.Writer) ([]float64, int) {
	var input []float64
	var err error
	if a.Config.InputFile != "" {
		input, err = dataset.Load(a.Config.InputFile)
	} else {
		input, err = dataset.Generate(a.Config.Size, a.Config.Dist, a.Config.Seed)
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error preparing input: %v\n", err)
		return nil, apperrors.ExitErrorConfig
	}
	if len(input) == 0 {
		fmt.Fprintf(a.ErrWriter, "Error: input dataset is empty\n")
		return nil, apperrors.ExitErrorConfig
	}

	if a.Config.Strict {
		if err := dataset.Validate(input); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return nil, apperrors.ExitErrorConfig
		}
	}
	return input, apperrors.ExitSuccess
}

// buildScheduler returns the scheduler implied by the workers setting. Zero
// means unbounded goroutines; a positive value caps concurrent tasks.
func (a *Application) buildScheduler() reduce.Scheduler {
	if a.Config.Workers > 0 {
		return reduce.NewBoundedScheduler(a.Config.Workers)
	}
	return reduce.GoroutineScheduler{}
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.ReductionResult, size int, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	if outputCfg.Quiet && bestResult != nil {
		cli.DisplayQuietResult(out, bestResult.Sum)
		if err := a.saveResultIfNeeded(bestResult, size, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		Size:    size,
		Verbose: outputCfg.Verbose,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult, size, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			cli.ConfirmSaved(outputCfg.OutputFile, out)
		}
	}

	return exitCode
}

func findBestResult(results []orchestration.ReductionResult) *orchestration.ReductionResult {
	var bestResult *orchestration.ReductionResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.ReductionResult, size int, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Sum, size, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
