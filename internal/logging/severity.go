package logging

import (
	"context"
	"log/slog"
	"sync"
)

// SeverityTracker is a slog.Handler that records the highest level it has
// seen. Fan it out alongside a primary handler and ask it afterwards whether
// a run logged warnings or errors. Safe for concurrent use.
type SeverityTracker struct {
	mu   sync.Mutex
	max  slog.Level
	seen bool
}

// NewSeverityTracker returns a tracker that has seen nothing yet.
func NewSeverityTracker() *SeverityTracker {
	return &SeverityTracker{}
}

func (t *SeverityTracker) Enabled(context.Context, slog.Level) bool { return true }

func (t *SeverityTracker) Handle(_ context.Context, record slog.Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.seen || record.Level > t.max {
		t.max = record.Level
	}
	t.seen = true
	return nil
}

func (t *SeverityTracker) WithAttrs([]slog.Attr) slog.Handler { return t }

func (t *SeverityTracker) WithGroup(string) slog.Handler { return t }

// Max reports the highest level seen and whether anything was logged at all.
func (t *SeverityTracker) Max() (slog.Level, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.max, t.seen
}

// SawWarnings reports whether any record at warn or above was handled.
func (t *SeverityTracker) SawWarnings() bool {
	max, seen := t.Max()
	return seen && max >= slog.LevelWarn
}

// SawErrors reports whether any record at error or above was handled.
func (t *SeverityTracker) SawErrors() bool {
	max, seen := t.Max()
	return seen && max >= slog.LevelError
}

// Fanout duplicates records across every non-nil handler. Enabled when any
// member is enabled; Handle delivers only to members that accept the
// record's level and returns the first error.
func Fanout(handlers ...slog.Handler) slog.Handler {
	filtered := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return NoopHandler{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &fanoutHandler{handlers: filtered}
}

type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}
