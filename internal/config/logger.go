package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ParseLevel converts a config level name to a log level.
func ParseLevel(name string) (log.Level, error) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: invalid log level %q", name)
	}
	return lvl, nil
}

// NewLogger creates the application logger writing to w.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "alien-dash",
	})
	if lvl, err := ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
