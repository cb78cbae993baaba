package logger

import (
	"context"
	"log/slog"

	"merchantcore/internal/sensitive"
	"merchantcore/pkg/idempotency"
)

// sensitiveKeys are attribute keys whose values are never logged in
// the clear, whatever type the value has.
var sensitiveKeys = map[string]struct{}{
	"pan":            {},
	"card_number":    {},
	"cvv":            {},
	"card_expiry":    {},
	"token":          {},
	"account_number": {},
	"routing_number": {},
	"iban":           {},
}

// RedactingHandler wraps an slog.Handler to replace sensitive
// attribute values with a masked literal and to inject the
// idempotence key from the context into every record.
type RedactingHandler struct {
	inner slog.Handler
}

// NewRedactingHandler creates a handler that masks sensitive attributes.
func NewRedactingHandler(inner slog.Handler) *RedactingHandler {
	return &RedactingHandler{inner: inner}
}

// Handle masks sensitive attributes and adds the idempotence key
// before delegating to the inner handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redact(a))
		return true
	})
	if key := idempotency.FromContext(ctx); key != "" {
		clean.AddAttrs(slog.String("idempotence_key", key))
	}
	return h.inner.Handle(ctx, clean)
}

// Enabled delegates to the inner handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes, masked.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = redact(a)
	}
	return &RedactingHandler{inner: h.inner.WithAttrs(masked)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{inner: h.inner.WithGroup(name)}
}

func redact(a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[a.Key]; ok {
		return slog.String(a.Key, sensitive.Mask)
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, g := range group {
			masked[i] = redact(g)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}
	// LogValuer values resolve to their own masked form.
	a.Value = a.Value.Resolve()
	return a
}
