package testutils

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// LogEntry represents a simplified log record for testing
type LogEntry map[string]interface{}

// String renders the entry's values in one line, for substring assertions.
func (e LogEntry) String() string {
	parts := make([]string, 0, len(e))
	for k, v := range e {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, " ")
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestSlogHandler is a memory-backed slog.Handler for testing.
// Handlers derived through WithAttrs share the parent's entries.
type TestSlogHandler struct {
	store *logStore
	attrs []slog.Attr
}

// NewTestSlogHandler creates a new memory-backed slog handler
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{store: &logStore{}}
}

// NewTestLogger returns a logger backed by a fresh TestSlogHandler.
func NewTestLogger() (*slog.Logger, *TestSlogHandler) {
	h := NewTestSlogHandler()
	return slog.New(h), h
}

// Enabled satisfies slog.Handler interface
func (h *TestSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler interface
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := make(LogEntry, len(h.attrs)+r.NumAttrs()+2)
	entry["level"] = r.Level.String()
	entry["message"] = r.Message
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.store.mu.Lock()
	h.store.entries = append(h.store.entries, entry)
	h.store.mu.Unlock()
	return nil
}

// WithAttrs satisfies slog.Handler interface
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TestSlogHandler{store: h.store, attrs: merged}
}

// WithGroup satisfies slog.Handler interface. Groups are flattened.
func (h *TestSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Entries returns all captured log entries
func (h *TestSlogHandler) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	result := make([]LogEntry, len(h.store.entries))
	copy(result, h.store.entries)
	return result
}

// Find returns the entries whose message equals msg.
func (h *TestSlogHandler) Find(msg string) []LogEntry {
	var found []LogEntry
	for _, e := range h.Entries() {
		if e["message"] == msg {
			found = append(found, e)
		}
	}
	return found
}

// Contains reports whether any captured entry renders with substr.
func (h *TestSlogHandler) Contains(substr string) bool {
	for _, e := range h.Entries() {
		if strings.Contains(e.String(), substr) {
			return true
		}
	}
	return false
}

// Clear resets the captured log entries
func (h *TestSlogHandler) Clear() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	h.store.entries = nil
}
