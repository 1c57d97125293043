// Package logging builds the converter's leveled logger: timestamped console
// output on stderr, optionally teed into a rotating log file.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures logger construction.
type Options struct {
	Debug bool   // Lower the level from info to debug
	File  string // Optional log file path; rotation is handled transparently
}

// New creates a logger from opts. Warnings and info stream to the console;
// with a file configured the same records also land in the log file.
func New(opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}
