// Package ctxutil carries per-request identifiers through context.Context.
package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the caller's IP address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx extracts the caller's IP address.
// Returns an empty string and false if absent or empty.
func ClientIPFromCtx(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok || ip == "" {
		return "", false
	}
	return ip, true
}
