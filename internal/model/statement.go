package model

import (
	"fmt"
	"strings"
)

// Statement is one parsed QuickStatements line: a subject, a main property,
// a raw main value token and the flattened qualifier/reference pairs that
// follow it.
type Statement struct {
	Subject  string // Entity identifier (Q42)
	Property string // Main property identifier (P31)
	Value    string // Raw main value token, type unknown until classified
	Pairs    []Pair // Qualifier and reference pairs from fields 3..
}

// Pair is a role-tagged key with its raw value token. The key's sigil decides
// whether it attaches as a qualifier (P...) or a reference (S...).
type Pair struct {
	Key   string
	Value string
}

// ParseStatement splits a raw input line into its tab-separated fields.
// Lines with fewer than three fields carry no statement and are rejected.
// Trailing fields are paired up two at a time; an odd trailing field is
// dropped.
func ParseStatement(line string) (*Statement, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected at least 3 tab-separated fields, got %d", len(fields))
	}

	st := &Statement{
		Subject:  fields[0],
		Property: fields[1],
		Value:    fields[2],
	}
	rest := fields[3:]
	for i := 0; i+1 < len(rest); i += 2 {
		st.Pairs = append(st.Pairs, Pair{Key: rest[i], Value: rest[i+1]})
	}
	return st, nil
}
