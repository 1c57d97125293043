package model

import "time"

// Report summarizes one conversion run
type Report struct {
	Input  string `yaml:"input" json:"input"`   // Input file path ("-" for stdin)
	Output string `yaml:"output" json:"output"` // Output file path

	Lines      int `yaml:"lines" json:"lines"`           // Input lines seen (blank lines excluded)
	Statements int `yaml:"statements" json:"statements"` // Statements emitted
	Qualifiers int `yaml:"qualifiers" json:"qualifiers"` // Qualifier triples emitted
	References int `yaml:"references" json:"references"` // Reference value triples emitted
	Triples    int `yaml:"triples" json:"triples"`       // Total triples in the graph

	SkippedLines  int `yaml:"skipped_lines" json:"skipped_lines"`   // Lines rejected by the validation gate
	SkippedValues int `yaml:"skipped_values" json:"skipped_values"` // Qualifier/reference values that failed classification

	StartedAt time.Time     `yaml:"started_at" json:"started_at"`
	Duration  time.Duration `yaml:"duration" json:"duration"`
}
