package classify

import (
	"errors"
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/marfox/qs2rdf/internal/vocab"
)

func TestClassify_Entity(t *testing.T) {
	v, err := Classify("Q42")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindEntity {
		t.Errorf("Expected entity kind, got %s", v.Kind)
	}
	iri, ok := v.Term.(rdf.IRI)
	if !ok {
		t.Fatalf("Expected IRI term, got %T", v.Term)
	}
	if iri.Value != vocab.Entity+"Q42" {
		t.Errorf("Expected %s, got %s", vocab.Entity+"Q42", iri.Value)
	}
}

func TestClassify_EntityIDUnchanged(t *testing.T) {
	// The URI must be the namespace base concatenated with the raw token.
	tokens := []string{"Q1", "Q5", "Q1985727"}
	for _, token := range tokens {
		v, err := Classify(token)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", token, err)
		}
		iri := v.Term.(rdf.IRI)
		if iri.Value != vocab.Entity+token {
			t.Errorf("Expected %s, got %s", vocab.Entity+token, iri.Value)
		}
	}
}

func TestClassify_MonolingualText(t *testing.T) {
	v, err := Classify(`en:"Douglas Adams"`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindMonolingual {
		t.Errorf("Expected monolingual kind, got %s", v.Kind)
	}
	lit, ok := v.Term.(rdf.Literal)
	if !ok {
		t.Fatalf("Expected literal term, got %T", v.Term)
	}
	if lit.Lexical != "Douglas Adams" {
		t.Errorf("Expected surrounding quotes stripped, got %q", lit.Lexical)
	}
	if lit.Lang != "en" {
		t.Errorf("Expected language tag 'en', got %q", lit.Lang)
	}
}

func TestClassify_MonolingualEscapedQuotes(t *testing.T) {
	v, err := Classify(`fr:"l'\"Encyclopédie\""`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindMonolingual {
		t.Errorf("Expected monolingual kind, got %s", v.Kind)
	}
}

func TestClassify_TimeFourDigitYearIdempotent(t *testing.T) {
	v, err := Classify("+1990-05-12T00:00:00Z/11")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindTime {
		t.Errorf("Expected time kind, got %s", v.Kind)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "1990-05-12T00:00:00" {
		t.Errorf("Expected 1990-05-12T00:00:00, got %q", lit.Lexical)
	}
	if lit.Datatype.Value != vocab.XSDDateTime {
		t.Errorf("Expected xsd:dateTime datatype, got %s", lit.Datatype.Value)
	}
}

func TestClassify_TimeShortYearPadded(t *testing.T) {
	v, err := Classify("+931-05-12T00:00:00Z/9")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "0931-05-12T00:00:00" {
		t.Errorf("Expected year padded to 0931, got %q", lit.Lexical)
	}
}

func TestClassify_TimeBCKeepsSign(t *testing.T) {
	v, err := Classify("-500-01-01T00:00:00Z/9")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "-0500-01-01T00:00:00" {
		t.Errorf("Expected BC sign kept and year padded, got %q", lit.Lexical)
	}
}

func TestClassify_TimeZeroYearRejected(t *testing.T) {
	for _, token := range []string{"+0000-01-01T00:00:00Z/9", "+0-01-01T00:00:00Z/9"} {
		_, err := Classify(token)
		if !errors.Is(err, ErrZeroYear) {
			t.Errorf("Expected ErrZeroYear for %s, got %v", token, err)
		}
	}
}

func TestClassify_GlobeCoordinateSwapsOrder(t *testing.T) {
	v, err := Classify("@52.516/13.3833")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindGlobe {
		t.Errorf("Expected globe kind, got %s", v.Kind)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "Point(13.3833 52.516)" {
		t.Errorf("Expected longitude first, got %q", lit.Lexical)
	}
	if lit.Datatype.Value != vocab.GeoWKTLiteral {
		t.Errorf("Expected geo:wktLiteral datatype, got %s", lit.Datatype.Value)
	}
}

func TestClassify_GlobeNegativeCoordinates(t *testing.T) {
	v, err := Classify("@-33.8688/151.2093")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "Point(151.2093 -33.8688)" {
		t.Errorf("Expected Point(151.2093 -33.8688), got %q", lit.Lexical)
	}
}

func TestClassify_QuantityKeepsLexicalForm(t *testing.T) {
	for _, token := range []string{"+42", "-42", "+3.1415", "-0.5"} {
		v, err := Classify(token)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", token, err)
		}
		if v.Kind != KindQuantity {
			t.Errorf("Expected quantity kind for %s, got %s", token, v.Kind)
		}
		lit := v.Term.(rdf.Literal)
		if lit.Lexical != token {
			t.Errorf("Expected raw lexical form %q, got %q", token, lit.Lexical)
		}
		if lit.Datatype.Value != vocab.XSDDecimal {
			t.Errorf("Expected xsd:decimal datatype, got %s", lit.Datatype.Value)
		}
	}
}

func TestClassify_URL(t *testing.T) {
	v, err := Classify(`"https://www.wikidata.org/wiki/Q42"`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindURL {
		t.Errorf("Expected url kind, got %s", v.Kind)
	}
	iri := v.Term.(rdf.IRI)
	if iri.Value != "https://www.wikidata.org/wiki/Q42" {
		t.Errorf("Expected quotes stripped from URL, got %s", iri.Value)
	}
}

func TestClassify_NonHTTPSchemeIsString(t *testing.T) {
	v, err := Classify("ftp://example.org/file")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindString {
		t.Errorf("Expected string kind for non-http scheme, got %s", v.Kind)
	}
}

func TestClassify_PlainString(t *testing.T) {
	v, err := Classify(`"just some text"`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindString {
		t.Errorf("Expected string kind, got %s", v.Kind)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "just some text" {
		t.Errorf("Expected one quote layer stripped, got %q", lit.Lexical)
	}
	if lit.Lang != "" || lit.Datatype.Value != "" {
		t.Error("Expected plain literal without language or datatype")
	}
}

func TestClassify_QuotedEntityIDIsString(t *testing.T) {
	// Quoting defeats the entity rule: first-match-wins reaches the fallback.
	v, err := Classify(`"Q42"`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindString {
		t.Errorf("Expected string kind for quoted entity ID, got %s", v.Kind)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "Q42" {
		t.Errorf("Expected Q42, got %q", lit.Lexical)
	}
}

func TestClassify_UnquotedTextIsString(t *testing.T) {
	v, err := Classify("plain token")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.Kind != KindString {
		t.Errorf("Expected string kind, got %s", v.Kind)
	}
	lit := v.Term.(rdf.Literal)
	if lit.Lexical != "plain token" {
		t.Errorf("Expected token unchanged, got %q", lit.Lexical)
	}
}
