package cli

import (
	"context"
	"fmt"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/spf13/cobra"

	"github.com/marfox/qs2rdf/internal/logging"
	"github.com/marfox/qs2rdf/internal/model"
	"github.com/marfox/qs2rdf/internal/pipeline"
)

var (
	outPath   string
	outFormat string
	logFile   string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a QuickStatements dataset into an RDF file",
	Long: `Convert reads one statement per line from the input file and emits
the Wikidata RDF reified-statement triples for each:
- subject, main property and classified value around a minted statement node
- qualifier values attached to the statement node
- reference values grouped on a provenance node

Lines that fail validation are skipped with a warning and do not fail the run.

Example:
  qs2rdf convert dataset.qs
  qs2rdf convert dataset.qs --output dataset.ttl --log-file conversion.log
  qs2rdf convert dataset.qs --format ntriples -v`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outPath, "output", "o", "out.ttl", "output RDF path")
	convertCmd.Flags().StringVar(&outFormat, "format", "turtle", "serialization format (turtle, ntriples)")
	convertCmd.Flags().StringVar(&logFile, "log-file", "", "also write log messages to this file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Output.Path = outPath
	if cmd.Flags().Changed("format") {
		if _, err := rdf.ResolveAnyFormat(outFormat); err != nil {
			return fmt.Errorf("unknown format %q (supported: turtle, ntriples)", outFormat)
		}
		cfg.Output.Format = outFormat
	} else {
		// No explicit format: the pipeline picks one from the output extension.
		cfg.Output.Format = ""
	}
	cfg.Logging.Debug = verbose
	cfg.Logging.File = logFile

	logger := logging.New(logging.Options{Debug: cfg.Logging.Debug, File: cfg.Logging.File})
	converter := pipeline.NewConverter(cfg, logger)

	_, err := converter.ConvertFile(context.Background(), args[0], cfg.Output.Path)
	return err
}
