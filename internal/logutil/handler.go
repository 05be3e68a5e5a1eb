// Package logutil provides the console log format used by nexd.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// TimeLayout is the timestamp format at the start of every console line.
const TimeLayout = "2006-01-02 15:04:05 -0700"

var _ slog.Handler = (*TabHandler)(nil)

// TabHandler writes one line per record: the timestamp, the message and the
// value of every attribute, separated by tabs. Attribute keys and the level
// are not printed, so a record like
//
//	slog.Info("REQUEST", "request", "hello.txt")
//
// comes out as "2026-10-18 14:48:00 +0000\tREQUEST\thello.txt".
type TabHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

// NewTabHandler creates a TabHandler writing to w. Only opts.Level is used.
func NewTabHandler(w io.Writer, opts *slog.HandlerOptions) *TabHandler {
	h := &TabHandler{mu: &sync.Mutex{}, w: w, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

func (h *TabHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *TabHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(TimeLayout))
		b.WriteByte('\t')
	}
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		appendAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *TabHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(slices.Clip(h.attrs), attrs...)
	return &h2
}

// WithGroup is a no-op: group names never reach the output.
func (h *TabHandler) WithGroup(string) slog.Handler {
	return h
}

func appendAttr(b *strings.Builder, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			appendAttr(b, ga)
		}
		return
	}
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte('\t')
	b.WriteString(v.String())
}
