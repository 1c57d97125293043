// Package pipeline orchestrates a conversion run: read statement lines,
// assemble triple clusters, serialize the accumulated graph once at the end.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/marfox/qs2rdf/internal/assemble"
	"github.com/marfox/qs2rdf/internal/graph"
	"github.com/marfox/qs2rdf/internal/model"
	"github.com/marfox/qs2rdf/internal/vocab"
)

// maxLineBytes caps a single statement line. Long monolingual strings blow
// past the default bufio.Scanner token size well before they reach this.
const maxLineBytes = 4 * 1024 * 1024

// Converter runs single-file conversions. Each run is single-threaded and
// processes lines strictly in input order; triples accumulate in memory and
// are written exactly once.
type Converter struct {
	cfg *model.Config
	log *log.Logger
}

// NewConverter creates a converter with the given configuration
func NewConverter(cfg *model.Config, logger *log.Logger) *Converter {
	return &Converter{cfg: cfg, log: logger}
}

// Convert reads statement lines from r and writes the serialized graph to w.
// Malformed lines are skipped with a warning and never fail the run; triples
// already emitted for earlier lines stay in the graph.
func (c *Converter) Convert(ctx context.Context, r io.Reader, w io.Writer, format string) (*model.Report, error) {
	g := graph.New(vocab.Prefixes())
	asm := assemble.New(g, c.log)
	report := &model.Report{StartedAt: time.Now().UTC()}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		report.Lines++
		res := asm.Assemble(line)
		if res.Status == assemble.StatusSkipped {
			report.SkippedLines++
			continue
		}
		report.Statements++
		report.Qualifiers += res.Qualifiers
		report.References += res.References
		report.SkippedValues += res.SkippedValues
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if err := g.Serialize(ctx, w, format); err != nil {
		return nil, err
	}
	report.Triples = g.Len()
	report.Duration = time.Since(report.StartedAt)
	return report, nil
}

// ConvertFile converts inPath into outPath. A configured format always wins;
// when none is configured the output extension picks one, falling back to
// turtle. I/O failures are the only fatal errors a conversion can produce.
func (c *Converter) ConvertFile(ctx context.Context, inPath, outPath string) (*model.Report, error) {
	format := c.cfg.Output.Format
	if format == "" {
		format = "turtle"
		if f, err := rdf.ResolveAnyFormatFromPath(outPath); err == nil {
			format = f.Name
		}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	report, err := c.Convert(ctx, in, out, format)
	if err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	report.Input = inPath
	report.Output = outPath
	c.log.Info("conversion complete",
		"input", inPath,
		"output", outPath,
		"lines", report.Lines,
		"statements", report.Statements,
		"qualifiers", report.Qualifiers,
		"references", report.References,
		"triples", report.Triples,
		"skipped_lines", report.SkippedLines,
		"skipped_values", report.SkippedValues,
		"duration", report.Duration,
	)
	return report, nil
}
