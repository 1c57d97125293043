package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/marfox/qs2rdf/internal/logging"
	"github.com/marfox/qs2rdf/internal/model"
	"github.com/marfox/qs2rdf/internal/pipeline"
	"github.com/marfox/qs2rdf/internal/worker"
)

var (
	concurrency int
	pattern     string
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Convert multiple QuickStatements files in parallel",
	Long: `Batch converts every matching file in a directory:
- Find input files by glob pattern
- Convert files in parallel with a configurable worker count
- Each file's conversion runs through the normal single-pass pipeline

Example:
  qs2rdf batch ./datasets
  qs2rdf batch ./datasets --pattern "*.tsv" --output-dir ./rdf
  qs2rdf batch ./datasets --concurrency 2`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&pattern, "pattern", "*.qs", "glob pattern for input files")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", ".", "output directory for RDF files")
	batchCmd.Flags().StringVar(&logFile, "log-file", "", "also write log messages to this file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Logging.Debug = verbose
	cfg.Logging.File = logFile
	cfg.Batch.Concurrency = concurrency
	cfg.Batch.Pattern = pattern
	cfg.Batch.OutputDir = outputDir

	inputs, err := filepath.Glob(filepath.Join(args[0], cfg.Batch.Pattern))
	if err != nil {
		return fmt.Errorf("bad pattern %q: %w", cfg.Batch.Pattern, err)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no files matching %q in %s", cfg.Batch.Pattern, args[0])
	}
	if err := os.MkdirAll(cfg.Batch.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	logger := logging.New(logging.Options{Debug: cfg.Logging.Debug, File: cfg.Logging.File})
	converter := pipeline.NewConverter(cfg, logger)
	processor := worker.NewBatchProcessor(converter, cfg.Batch.Concurrency)

	results := processor.ProcessFiles(context.Background(), inputs, cfg.Batch.OutputDir)

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			logger.Error("conversion failed", "input", result.Input, "err", result.Error)
		}
	}
	logger.Info("batch complete", "files", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}
