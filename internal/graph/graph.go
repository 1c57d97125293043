// Package graph wraps the rdf-go triple model behind the append-only sink
// the converter writes into. Triples accumulate in insertion order and are
// serialized exactly once at the end of a run with the converter's prefix
// table bound.
package graph

import (
	"context"
	"fmt"
	"io"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Graph is an append-only collection of triples with a prefix table.
// It has a single writer per run; existing triples are never mutated.
type Graph struct {
	triples  []rdf.Triple
	prefixes map[string]string
}

// New creates an empty graph with the given prefix bindings.
func New(prefixes map[string]string) *Graph {
	return &Graph{prefixes: prefixes}
}

// Add appends one triple.
func (g *Graph) Add(s rdf.Term, p rdf.IRI, o rdf.Term) {
	g.triples = append(g.triples, rdf.Triple{S: s, P: p, O: o})
}

// Len returns the number of triples accumulated so far.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the accumulated triples in insertion order.
func (g *Graph) Triples() []rdf.Triple {
	return g.triples
}

// Serialize writes the whole graph to w in the named format. For Turtle the
// prefix table is emitted as @prefix directives and IRIs are abbreviated
// where possible.
func (g *Graph) Serialize(ctx context.Context, w io.Writer, format string) error {
	quads := make([]rdf.Quad, len(g.triples))
	for i, t := range g.triples {
		quads[i] = t.ToQuad()
	}
	opts := rdf.AnyFormatOptions{
		Turtle: &rdf.TurtleEncodeOptions{Prefixes: g.prefixes},
	}
	if err := rdf.SerializeAny(ctx, w, format, quads, opts); err != nil {
		return fmt.Errorf("serialize %s: %w", format, err)
	}
	return nil
}
