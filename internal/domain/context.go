package domain

import "context"

// ContextKey is a type for context keys to avoid magic strings
type ContextKey string

const (
	// ContextKeySubject is the key for the token subject in the context
	ContextKeySubject ContextKey = "sub"
	// ContextKeyTokenID is the key for the token identifier in the context
	ContextKeyTokenID ContextKey = "jti"
)

// WithSubject adds the token subject to the context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, subject)
}

// WithTokenID adds the token identifier to the context
func WithTokenID(ctx context.Context, tokenID string) context.Context {
	return context.WithValue(ctx, ContextKeyTokenID, tokenID)
}

// GetSubject retrieves the token subject from the context
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ContextKeySubject).(string)
	return subject, ok
}

// GetTokenID retrieves the token identifier from the context
func GetTokenID(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(ContextKeyTokenID).(string)
	return tokenID, ok
}
