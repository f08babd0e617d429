package service

import "context"

type requestIDKey struct{}

// WithRequestID attaches the id the handler assigned to this request, so log
// lines emitted across the pipeline can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the attached request id, or "" when none was set.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
