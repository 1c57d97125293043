// Package assemble turns parsed QuickStatements lines into reified-statement
// triple clusters: subject → property → statement node → value, with
// qualifiers attached to the statement node and references grouped on a
// provenance node.
package assemble

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/marfox/qs2rdf/internal/classify"
	"github.com/marfox/qs2rdf/internal/graph"
	"github.com/marfox/qs2rdf/internal/model"
	"github.com/marfox/qs2rdf/internal/vocab"
)

// Status is the disposition of one input line.
type Status string

const (
	// StatusAdded means the line produced a statement cluster.
	StatusAdded Status = "added"
	// StatusSkipped means the line failed the validation gate or its main
	// value was rejected; it produced no triples.
	StatusSkipped Status = "skipped"
)

// Result reports what one line contributed to the graph.
type Result struct {
	Status        Status
	Reason        string // Populated when Status is StatusSkipped
	Qualifiers    int    // Qualifier triples emitted
	References    int    // Reference value triples emitted
	SkippedValues int    // Qualifier/reference values that failed classification
}

// Assembler emits triple clusters into a graph sink. Malformed input never
// aborts a run: structural and value errors skip the affected line or pair
// and are reported through the Result.
type Assembler struct {
	graph *graph.Graph
	log   *log.Logger
}

// New creates an assembler writing into g.
func New(g *graph.Graph, logger *log.Logger) *Assembler {
	return &Assembler{graph: g, log: logger}
}

// Assemble processes one raw input line. Validation failures and main-value
// rejections skip the whole line; a rejected qualifier or reference value
// skips only that pair.
func (a *Assembler) Assemble(line string) Result {
	a.log.Debug("processing line", "line", line)

	st, err := model.ParseStatement(line)
	if err != nil {
		a.log.Warn("skipping malformed line", "err", err)
		return Result{Status: StatusSkipped, Reason: err.Error()}
	}
	if !vocab.IsEntityID(st.Subject) {
		a.log.Warn("skipping line: subject is not an entity ID", "subject", st.Subject)
		return Result{Status: StatusSkipped, Reason: "malformed subject " + st.Subject}
	}
	if !vocab.IsPropertyID(st.Property) {
		a.log.Warn("skipping line: main property is not a property ID", "property", st.Property)
		return Result{Status: StatusSkipped, Reason: "malformed property " + st.Property}
	}

	mainValue, err := classify.Classify(st.Value)
	if err != nil {
		// The line carries no meaning without its main value.
		a.log.Warn("skipping line: main value rejected", "token", st.Value, "err", err)
		return Result{Status: StatusSkipped, Reason: err.Error()}
	}
	a.log.Debug("classified main value", "token", st.Value, "kind", mainValue.Kind, "term", mainValue.Term.String())

	stNode := mintStatementNode(st.Subject)
	a.graph.Add(rdf.IRI{Value: vocab.Entity + st.Subject}, rdf.IRI{Value: vocab.Prop + st.Property}, stNode)
	a.graph.Add(stNode, rdf.IRI{Value: vocab.PropStmt + st.Property}, mainValue.Term)

	res := Result{Status: StatusAdded}
	qualifiers, references := partition(st.Pairs)

	if len(qualifiers) == 0 {
		a.log.Info("no qualifiers", "subject", st.Subject, "property", st.Property)
	}
	for _, pair := range qualifiers {
		value, err := classify.Classify(pair.Value)
		if err != nil {
			a.log.Warn("skipping qualifier: value rejected", "key", pair.Key, "token", pair.Value, "err", err)
			res.SkippedValues++
			continue
		}
		a.log.Debug("classified qualifier value", "token", pair.Value, "kind", value.Kind, "term", value.Term.String())
		a.graph.Add(stNode, rdf.IRI{Value: vocab.PropQual + pair.Key}, value.Term)
		res.Qualifiers++
	}

	if len(references) == 0 {
		a.log.Info("no references", "subject", st.Subject, "property", st.Property)
		return res
	}
	refNode := mintReferenceNode(mainValue.Term)
	a.graph.Add(stNode, rdf.IRI{Value: vocab.WasDerivedFrom}, refNode)
	for _, pair := range references {
		value, err := classify.Classify(pair.Value)
		if err != nil {
			a.log.Warn("skipping reference: value rejected", "key", pair.Key, "token", pair.Value, "err", err)
			res.SkippedValues++
			continue
		}
		a.log.Debug("classified reference value", "token", pair.Value, "kind", value.Kind, "term", value.Term.String())
		// The S sigil names a reference property: remap it to P.
		a.graph.Add(refNode, rdf.IRI{Value: vocab.PropRef + "P" + pair.Key[1:]}, value.Term)
		res.References++
	}
	return res
}

// partition splits pairs into qualifiers (P-keyed) and references (S-keyed).
// Keys with any other sigil are ignored.
func partition(pairs []model.Pair) (qualifiers, references []model.Pair) {
	for _, pair := range pairs {
		switch {
		case strings.HasPrefix(pair.Key, "P"):
			qualifiers = append(qualifiers, pair)
		case strings.HasPrefix(pair.Key, "S"):
			references = append(references, pair)
		}
	}
	return qualifiers, references
}
