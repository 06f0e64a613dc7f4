// Package logging builds the leveled console logger shared by every component.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPrefix is prepended to every log line.
const DefaultPrefix = "yapper"

// Options holds configuration for the logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
	// Output defaults to os.Stderr so logs never mix with command responses.
	Output io.Writer
}

// DefaultOptions returns warn-level text logging to stderr.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    DefaultPrefix,
		Output:    os.Stderr,
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// NewFromConfig creates a logger from string configuration values, as loaded
// from TOML or the environment.
func NewFromConfig(w io.Writer, level, format string, timestamps, caller bool) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = timestamps
	opts.ReportCaller = caller
	if w != nil {
		opts.Output = w
	}
	return New(opts)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a level name to a log.Level. Unknown names mean warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter maps a format name to a log.Formatter. Unknown names mean text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
