package services

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	mediaKindKey contextKey = "media_kind"
)

// WithRequestID annotates context with a request correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(requestIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithMediaKind annotates context with the media kind being served.
func WithMediaKind(ctx context.Context, kind string) context.Context {
	if kind == "" {
		return ctx
	}
	return context.WithValue(ctx, mediaKindKey, kind)
}

// MediaKindFromContext returns the media kind if present.
func MediaKindFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(mediaKindKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
