// Package config handles application configuration and setup
package config

import (
	"io"

	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Standard output
// carries the table literal, so all log output goes to the given writer,
// which is standard error for the command.
func CreateLogger(output io.Writer, debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = output
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
