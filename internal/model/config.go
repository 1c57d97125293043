package model

import "runtime"

// Config holds the complete converter configuration
type Config struct {
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Batch   BatchConfig   `yaml:"batch" json:"batch"`
}

// OutputConfig controls where and how the RDF graph is written
type OutputConfig struct {
	Path   string `yaml:"path" json:"path"`     // Output file path
	Format string `yaml:"format" json:"format"` // Serialization format (turtle, ntriples)
}

// LoggingConfig controls console and file logging
type LoggingConfig struct {
	Debug bool   `yaml:"debug" json:"debug"`                   // Enable debug-level output
	File  string `yaml:"file,omitempty" json:"file,omitempty"` // Optional log file path
}

// BatchConfig controls multi-file conversion
type BatchConfig struct {
	Concurrency int    `yaml:"concurrency" json:"concurrency"` // Number of concurrent workers
	Pattern     string `yaml:"pattern" json:"pattern"`         // Glob pattern for input files
	OutputDir   string `yaml:"output_dir" json:"output_dir"`   // Directory for converted output
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path:   "out.ttl",
			Format: "turtle",
		},
		Logging: LoggingConfig{
			Debug: false,
		},
		Batch: BatchConfig{
			Concurrency: runtime.NumCPU(),
			Pattern:     "*.qs",
			OutputDir:   ".",
		},
	}
}
