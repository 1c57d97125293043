package worker

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/marfox/qs2rdf/internal/model"
)

// FileConverter converts one input file into one output file.
type FileConverter interface {
	ConvertFile(ctx context.Context, inPath, outPath string) (*model.Report, error)
}

// ConvertJob converts a single QuickStatements file.
type ConvertJob struct {
	Input     string
	Output    string
	Converter FileConverter
}

// Execute runs the conversion.
func (j *ConvertJob) Execute(ctx context.Context) Result {
	report, err := j.Converter.ConvertFile(ctx, j.Input, j.Output)
	return &ConvertResult{
		Input:  j.Input,
		Report: report,
		Error:  err,
	}
}

// ConvertResult is the outcome of one file conversion.
type ConvertResult struct {
	Input  string
	Report *model.Report
	Error  error
}

// GetError returns the conversion error, if any.
func (r *ConvertResult) GetError() error {
	return r.Error
}

// BatchProcessor converts multiple files concurrently. Each file still goes
// through the single-threaded conversion pipeline.
type BatchProcessor struct {
	converter   FileConverter
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(converter FileConverter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		converter:   converter,
		concurrency: concurrency,
	}
}

// ProcessFiles converts the given input files, writing each result into
// outDir under the input's base name with a .ttl extension.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, inputs []string, outDir string) []*ConvertResult {
	if len(inputs) == 0 {
		return []*ConvertResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&ConvertJob{
			Input:     input,
			Output:    OutputPath(input, outDir),
			Converter: b.converter,
		})
	}
	results := pool.Wait()

	convertResults := make([]*ConvertResult, len(results))
	for i, result := range results {
		convertResults[i] = result.(*ConvertResult)
	}
	return convertResults
}

// OutputPath maps an input file to its Turtle output path in outDir.
func OutputPath(input, outDir string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+".ttl")
}
