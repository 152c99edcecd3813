package middleware

import (
	"context"

	"handkeeper/internal/core"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	identityKey  contextKey = "identity"
)

// RequestIDFromContext returns the id set by RequestID, or "" outside of it.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}

func WithIdentity(ctx context.Context, identity core.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (core.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(core.Identity)
	return identity, ok && identity.UserID != ""
}
