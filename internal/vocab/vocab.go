// Package vocab holds the Wikidata RDF namespaces used by the converter,
// the prefix table bound into serialized output, and the identifier shape
// checks for entities and properties.
package vocab

import "regexp"

// BaseURI is the Wikidata root namespace.
const BaseURI = "http://www.wikidata.org/"

// Wikidata namespaces for the reified-statement data model.
const (
	Entity    = BaseURI + "entity/"
	Statement = Entity + "statement/"
	Reference = BaseURI + "reference/"
	Prop      = BaseURI + "prop/"
	PropStmt  = Prop + "statement/"
	PropQual  = Prop + "qualifier/"
	PropRef   = Prop + "reference/"
)

// Standard vocabularies.
const (
	Prov = "http://www.w3.org/ns/prov#"
	Geo  = "http://www.opengis.net/ont/geosparql#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Datatype and predicate IRIs used by the converter.
const (
	XSDDateTime    = XSD + "dateTime"
	XSDDecimal     = XSD + "decimal"
	GeoWKTLiteral  = Geo + "wktLiteral"
	WasDerivedFrom = Prov + "wasDerivedFrom"
)

// Prefixes returns the prefix table bound into serialized output. A fresh map
// is returned so callers cannot mutate the canonical bindings.
func Prefixes() map[string]string {
	return map[string]string{
		"wd":    Entity,
		"wds":   Statement,
		"wdref": Reference,
		"p":     Prop,
		"ps":    PropStmt,
		"pq":    PropQual,
		"pr":    PropRef,
		"prov":  Prov,
		"geo":   Geo,
		"xsd":   XSD,
	}
}

var (
	entityIDPattern   = regexp.MustCompile(`^Q\d+$`)
	propertyIDPattern = regexp.MustCompile(`^P\d+$`)
)

// IsEntityID reports whether s has the entity identifier shape (Q42).
func IsEntityID(s string) bool {
	return entityIDPattern.MatchString(s)
}

// IsPropertyID reports whether s has the property identifier shape (P31).
func IsPropertyID(s string) bool {
	return propertyIDPattern.MatchString(s)
}
