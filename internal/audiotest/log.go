// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a captured log entry.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// LogRecorder is a slog.Handler that keeps every record in memory.
type LogRecorder struct {
	mtx     *sync.Mutex
	records *[]Record
	attrs   []slog.Attr
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{mtx: &sync.Mutex{}, records: &[]Record{}}
}

// Logger returns a logger writing into the recorder.
func (h *LogRecorder) Logger() *slog.Logger { return slog.New(h) }

func (h *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (h *LogRecorder) Handle(_ context.Context, r slog.Record) error {
	rec := Record{Level: r.Level, Message: r.Message, Attrs: map[string]string{}}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.String()
		return true
	})

	h.mtx.Lock()
	defer h.mtx.Unlock()
	*h.records = append(*h.records, rec)

	return nil
}

func (h *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogRecorder{
		mtx:     h.mtx,
		records: h.records,
		attrs:   append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup is a no-op; groups are flattened.
func (h *LogRecorder) WithGroup(string) slog.Handler { return h }

// Records returns a snapshot of everything logged so far.
func (h *LogRecorder) Records() []Record {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return append([]Record(nil), *h.records...)
}

// Count returns how many records were logged at level.
func (h *LogRecorder) Count(level slog.Level) int {
	n := 0
	for _, r := range h.Records() {
		if r.Level == level {
			n++
		}
	}
	return n
}

// Find returns the first record logged at level with msg.
func (h *LogRecorder) Find(level slog.Level, msg string) (Record, bool) {
	for _, r := range h.Records() {
		if r.Level == level && r.Message == msg {
			return r, true
		}
	}
	return Record{}, false
}
