// Package logging writes one JSON object per line, the format every component
// of the service uses for startup, access and failure logs.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Fields are extra key/value pairs attached to a log entry.
type Fields map[string]any

// Logger emits JSON lines with a "ts" timestamp rendered in a fixed location.
// It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stdout, time.UTC)
)

// Default returns the process-wide logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Location returns the time zone used for timestamps.
func (l *Logger) Location() *time.Location { return l.loc }

// Info logs msg at info level.
func (l *Logger) Info(msg string, f Fields) { l.log("info", msg, nil, f) }

// Warn logs msg at warn level with an optional error.
func (l *Logger) Warn(msg string, err error, f Fields) { l.log("warn", msg, err, f) }

// Error logs msg at error level with an optional error.
func (l *Logger) Error(msg string, err error, f Fields) { l.log("error", msg, err, f) }

// Write logs a raw entry; "ts" is always set and "level" defaults to info.
func (l *Logger) Write(entry Fields) {
	if entry == nil {
		entry = Fields{}
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		entry["level"] = "info"
	}

	l.mu.Lock()
	_ = l.enc.Encode(map[string]any(entry))
	l.mu.Unlock()
}

func (l *Logger) log(level, msg string, err error, f Fields) {
	entry := make(Fields, len(f)+4)
	for k, v := range f {
		entry[k] = v
	}
	entry["level"] = level
	entry["msg"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}
	l.Write(entry)
}
