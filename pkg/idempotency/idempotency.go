// Package idempotency propagates the idempotence key through contexts.
package idempotency

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// FromContext extracts the idempotence key from context.
// Returns empty string if not present.
func FromContext(ctx context.Context) string {
	if key, ok := ctx.Value(contextKey{}).(string); ok {
		return key
	}
	return ""
}

// WithKey returns a new context carrying the idempotence key.
func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKey{}, key)
}

// NewKey generates a fresh idempotence key (UUID v4).
func NewKey() string {
	return uuid.New().String()
}
