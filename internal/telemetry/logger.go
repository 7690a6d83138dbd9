// Package telemetry provides the process logger. The TUI owns the terminal,
// so logs always go to a file (or nowhere), never to stdout.
package telemetry

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger opens a structured logger writing to path. An empty path yields a
// silent logger. The returned closer releases the log file.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Formatter:       log.JSONFormatter,
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
