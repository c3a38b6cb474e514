package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord is one captured log call
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogCapture is a slog.Handler that keeps every record in memory.
// Loggers derived with With share the same store.
type LogCapture struct {
	store *logStore
	attrs []slog.Attr
	group string
}

type logStore struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewTestLogger returns a logger that records everything it is given
func NewTestLogger(t *testing.T) (*slog.Logger, *LogCapture) {
	t.Helper()
	capture := &LogCapture{store: &logStore{}}
	return slog.New(capture), capture
}

// Enabled implements slog.Handler; every level is captured
func (c *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler
func (c *LogCapture) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(c.attrs)+r.NumAttrs())
	for _, a := range c.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[c.key(a.Key)] = a.Value.Any()
		return true
	})

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.records = append(c.store.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// WithAttrs implements slog.Handler
func (c *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *c
	next.attrs = append([]slog.Attr(nil), c.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: c.key(a.Key), Value: a.Value})
	}
	return &next
}

// WithGroup implements slog.Handler
func (c *LogCapture) WithGroup(name string) slog.Handler {
	next := *c
	next.group = c.key(name)
	return &next
}

func (c *LogCapture) key(k string) string {
	if c.group == "" {
		return k
	}
	return c.group + "." + k
}

// Records returns a copy of everything captured so far
func (c *LogCapture) Records() []LogRecord {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return append([]LogRecord(nil), c.store.records...)
}

// Find returns the first record at level whose message contains msg
func (c *LogCapture) Find(level slog.Level, msg string) (LogRecord, bool) {
	for _, r := range c.Records() {
		if r.Level == level && strings.Contains(r.Message, msg) {
			return r, true
		}
	}
	return LogRecord{}, false
}

// AssertLogContains fails the test unless a record at level contains msg
func AssertLogContains(t *testing.T, c *LogCapture, level slog.Level, msg string) LogRecord {
	t.Helper()
	r, ok := c.Find(level, msg)
	if !ok {
		t.Errorf("no %s log containing %q", level, msg)
		for _, r := range c.Records() {
			t.Logf("  [%s] %s %v", r.Level, r.Message, r.Attrs)
		}
	}
	return r
}

// AssertNoErrors fails the test if anything was logged at error level
func AssertNoErrors(t *testing.T, c *LogCapture) {
	t.Helper()
	for _, r := range c.Records() {
		if r.Level >= slog.LevelError {
			t.Errorf("unexpected error log: %s %v", r.Message, r.Attrs)
		}
	}
}
