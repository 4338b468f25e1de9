package slogx

import (
	"context"
	"log/slog"
)

// Redaction is the value substituted for masked attributes.
const Redaction = "***"

// DefaultPIIFields are the attribute keys masked when no explicit set is
// configured.
var DefaultPIIFields = []string{"name", "email", "phone", "ssn", "password"}

// RedactHandler is a slog.Handler that masks the values of a fixed set of
// attribute keys before delegating to the wrapped handler. Group members are
// matched by their own key, regardless of nesting.
type RedactHandler struct {
	inner  slog.Handler
	fields map[string]struct{}
}

// NewRedactHandler wraps h so that attributes whose key appears in fields
// are replaced with Redaction.
func NewRedactHandler(h slog.Handler, fields []string) *RedactHandler {
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return &RedactHandler{inner: h, fields: set}
}

func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *RedactHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redact(a))
		return true
	})
	return h.inner.Handle(ctx, out)
}

func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.redact(a)
	}
	return &RedactHandler{inner: h.inner.WithAttrs(masked), fields: h.fields}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{inner: h.inner.WithGroup(name), fields: h.fields}
}

func (h *RedactHandler) redact(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		masked := make([]any, 0, len(members))
		for _, m := range members {
			masked = append(masked, h.redact(m))
		}
		return slog.Group(a.Key, masked...)
	}
	if _, ok := h.fields[a.Key]; ok {
		return slog.String(a.Key, Redaction)
	}
	return a
}
