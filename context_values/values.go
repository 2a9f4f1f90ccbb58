package context_values

import (
	"context"
	"fmt"
)

type contextKey string

var contextKeySessionId = contextKey("session_id")

// WithSessionId adds the recording session id to the context
func WithSessionId(ctx context.Context, sessionId string) context.Context {
	return context.WithValue(ctx, contextKeySessionId, sessionId)
}

// SessionIdFromContext returns the recording session id from the context
func SessionIdFromContext(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("context is nil")
	}
	val, ok := ctx.Value(contextKeySessionId).(string)
	if !ok {
		return "", fmt.Errorf("no session id in context")
	}
	return val, nil
}
