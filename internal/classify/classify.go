// Package classify maps raw QuickStatements value tokens to typed RDF terms.
//
// Tokens are matched against an ordered rule list; the first rule whose shape
// matches wins and later rules are never consulted. The rules are not mutually
// exclusive on arbitrary input, so the order is part of the contract.
package classify

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/marfox/qs2rdf/internal/vocab"
)

// Kind identifies which classification rule matched a token.
type Kind string

const (
	KindEntity      Kind = "entity"
	KindMonolingual Kind = "monolingual"
	KindTime        Kind = "time"
	KindGlobe       Kind = "globe"
	KindQuantity    Kind = "quantity"
	KindURL         Kind = "url"
	KindString      Kind = "string"
)

// Value is a classified token: the rule that matched and the RDF term it
// produced.
type Value struct {
	Kind Kind
	Term rdf.Term
}

// ErrZeroYear marks a timestamp whose normalized year is 0000, which has no
// dateTime representation.
var ErrZeroYear = errors.New("year zero is not representable as xsd:dateTime")

var (
	monolingualPattern = regexp.MustCompile(`^(\w+):"((?:[^"\\]|\\.)*)"$`)
	timePattern        = regexp.MustCompile(`^([+-])(\d+)-(\d{2}-\d{2}T\d{2}:\d{2}:\d{2})Z/(\d+)$`)
	globePattern       = regexp.MustCompile(`^@([+-]?\d+(?:\.\d+)?)/([+-]?\d+(?:\.\d+)?)$`)
	quantityPattern    = regexp.MustCompile(`^[+-]\d+(?:\.\d+)?$`)
)

// Classify evaluates token against the ordered rule list and returns the
// first match. Classification is pure: the caller decides how to log and
// whether a rejection voids the surrounding triple or the whole line.
func Classify(token string) (Value, error) {
	if vocab.IsEntityID(token) {
		return Value{Kind: KindEntity, Term: rdf.IRI{Value: vocab.Entity + token}}, nil
	}
	if m := monolingualPattern.FindStringSubmatch(token); m != nil {
		return Value{
			Kind: KindMonolingual,
			Term: rdf.Literal{Lexical: m[2], Lang: m[1]},
		}, nil
	}
	if m := timePattern.FindStringSubmatch(token); m != nil {
		return classifyTime(m[1], m[2], m[3])
	}
	if m := globePattern.FindStringSubmatch(token); m != nil {
		// The WKT point convention is longitude first.
		return Value{
			Kind: KindGlobe,
			Term: rdf.Literal{
				Lexical:  fmt.Sprintf("Point(%s %s)", m[2], m[1]),
				Datatype: rdf.IRI{Value: vocab.GeoWKTLiteral},
			},
		}, nil
	}
	if quantityPattern.MatchString(token) {
		return Value{
			Kind: KindQuantity,
			Term: rdf.Literal{Lexical: token, Datatype: rdf.IRI{Value: vocab.XSDDecimal}},
		}, nil
	}
	return classifyFallback(token), nil
}

// classifyTime normalizes a sign-prefixed timestamp. The precision suffix and
// trailing Z were already stripped by the pattern; the year is zero-padded to
// four digits, a positive sign is dropped and a negative sign kept for BC
// dates.
func classifyTime(sign, year, rest string) (Value, error) {
	for len(year) < 4 {
		year = "0" + year
	}
	if year == "0000" {
		return Value{}, ErrZeroYear
	}
	lexical := year + "-" + rest
	if sign == "-" {
		lexical = "-" + lexical
	}
	return Value{
		Kind: KindTime,
		Term: rdf.Literal{Lexical: lexical, Datatype: rdf.IRI{Value: vocab.XSDDateTime}},
	}, nil
}

// classifyFallback strips one layer of surrounding double quotes and decides
// between a URL reference and a plain string literal.
func classifyFallback(token string) Value {
	unquoted := token
	if len(unquoted) >= 2 && strings.HasPrefix(unquoted, `"`) && strings.HasSuffix(unquoted, `"`) {
		unquoted = unquoted[1 : len(unquoted)-1]
	}
	if u, err := url.Parse(unquoted); err == nil && strings.HasPrefix(u.Scheme, "http") && u.Host != "" {
		return Value{Kind: KindURL, Term: rdf.IRI{Value: unquoted}}
	}
	return Value{Kind: KindString, Term: rdf.Literal{Lexical: unquoted}}
}
