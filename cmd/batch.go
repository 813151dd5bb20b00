package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/31b4/labparse/internal/ingest"
)

var numWorkers int

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <report.pdf>...",
	Short: "Parse multiple lab reports in parallel",
	Long: `Batch runs the parse pipeline over several reports at once with a
worker pool. Each report is processed independently; a failing report
is reported and skipped, never aborts the run.

Examples:
  labparse batch reports/*.pdf
  labparse batch --workers 2 --output json a.pdf b.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&numWorkers, "workers", runtime.NumCPU(), "number of parallel workers")

	batchCmd.Flags().StringArrayVar(&langFlag, "lang", nil, "OCR language (repeatable, tesseract codes)")
	batchCmd.Flags().IntVar(&dpiFlag, "dpi", 0, "rasterization DPI for the OCR path")
	batchCmd.Flags().IntVarP(&timeoutFlag, "timeout", "t", 0, "per-document timeout in seconds")
	batchCmd.Flags().BoolVar(&forceOCRFlag, "force-ocr", false, "skip the native text layer and always OCR")
	batchCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose pipeline logging")
}

func runBatch(cmd *cobra.Command, args []string) error {
	filenames := args
	for _, filename := range filenames {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Processing %d file(s) with %d workers...\n", len(filenames), numWorkers)
	}

	engine := ingest.New(engineConfig())

	pool := ingest.NewWorkerPool(cmd.Context(), engine, numWorkers)
	pool.Start()

	// Both pool channels are bounded; once the results buffer fills the
	// workers block and Submit would block with them. Submission has to
	// run concurrently with the drain below.
	go func() {
		for i, filename := range filenames {
			pool.Submit(ingest.Task{ID: fmt.Sprintf("task-%d", i), Filename: filename})
		}
		pool.Finish()
	}()

	var succeeded []*ingest.Result
	var failed []string
	var totalTime time.Duration

	for taskResult := range pool.Results() {
		if taskResult.Err != nil {
			failed = append(failed, taskResult.Task.Filename)
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", filepath.Base(taskResult.Task.Filename), taskResult.Err)
			continue
		}
		succeeded = append(succeeded, taskResult.Result)
		totalTime += taskResult.Duration
	}

	// Pool completion order is nondeterministic.
	sort.Slice(succeeded, func(i, j int) bool {
		return succeeded[i].File < succeeded[j].File
	})

	if output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(succeeded); err != nil {
			return err
		}
	} else {
		for _, result := range succeeded {
			if err := engine.OutputResult(os.Stdout, result); err != nil {
				return err
			}
			fmt.Println()
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Completed %d file(s)", len(succeeded))
		if len(failed) > 0 {
			fmt.Fprintf(os.Stderr, " (%d failed)", len(failed))
		}
		fmt.Fprintf(os.Stderr, " in %v\n", totalTime)
	}

	if len(failed) == len(filenames) {
		return fmt.Errorf("all %d file(s) failed", len(failed))
	}

	return nil
}
