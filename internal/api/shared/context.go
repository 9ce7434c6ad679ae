package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// ContextKey is the key type for values stored in the request context.
type ContextKey string

// TraceIDKey is the context key for the per-request trace ID.
const TraceIDKey ContextKey = "traceID"

// traceIDBytes is the number of random bytes in a trace ID (32 hex chars).
const traceIDBytes = 16

// SetTraceID stores a freshly generated trace ID in the context so that
// logs and error responses for one request can be correlated.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID from the context, or "" if none was set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDBytes)
	if _, err := rand.Read(b); err != nil {
		// The random source failing is effectively unheard of; fall back
		// to a UUID rather than a constant.
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}
