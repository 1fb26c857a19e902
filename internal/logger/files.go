// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file names created inside the logs directory.
const (
	AccessLogFile = "access.log"
	ErrorLogFile  = "error.log"
)

// Files bundles the access and error loggers of a service. Both write JSON
// lines to size-rotated files in the logs directory.
type Files struct {
	// Access receives client errors: responses with status >= 400 and
	// unmatched routes.
	Access *Logger
	// Error receives handler failures with full detail.
	Error *Logger

	closers []io.Closer
}

// NewFiles creates dir if needed and opens <dir>/access.log and
// <dir>/error.log. With mirror set every entry is also written to stdout.
func NewFiles(dir, role string, mirror bool) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}

	access := newRotatingFile(filepath.Join(dir, AccessLogFile))
	errorLog := newRotatingFile(filepath.Join(dir, ErrorLogFile))

	return &Files{
		Access:  fileLogger(access, role, "access", mirror),
		Error:   fileLogger(errorLog, role, "error", mirror),
		closers: []io.Closer{access, errorLog},
	}, nil
}

// NopFiles returns Files whose loggers discard everything.
func NopFiles() *Files {
	return &Files{Access: Nop(), Error: Nop()}
}

// Close flushes and closes the underlying files.
func (f *Files) Close() error {
	var err error
	for _, c := range f.closers {
		err = errors.Join(err, c.Close())
	}
	return err
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 10,
		MaxAge:     30, // days
	}
}

func fileLogger(w io.Writer, role, stream string, mirror bool) *Logger {
	if mirror {
		w = zerolog.MultiLevelWriter(w, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Str("stream", stream).
		Timestamp().
		Logger()}
}
