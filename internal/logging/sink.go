package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Log file permissions
const (
	logFilePermissions = 0o600
	logDirPermissions  = 0o700
)

// Sink is the append-only log file plus the structured logger writing to
// it. Closing the sink closes the file; the logger must not be used after.
type Sink struct {
	*log.Logger
	file *os.File
}

// Open appends to the log file at path, creating it (and its parent
// directory) when missing.
func Open(path string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPermissions); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	return &Sink{Logger: newLogger(file), file: file}, nil
}

// Discard returns a sink that drops everything. Used in tests and as a
// fallback when the log file cannot be opened.
func Discard() *Sink {
	return &Sink{Logger: newLogger(io.Discard)}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}

// Line appends one raw subprocess output line
func (s *Sink) Line(text string) {
	s.Info(text)
}

// Close flushes and closes the underlying file
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
