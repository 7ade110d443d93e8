package middleware

import (
	"context"
	"errors"
)

// CurrentUserID resolves the authenticated identity placed into the context
// by Authenticate. Ownership decisions must always be based on this value,
// never on client-supplied ids.
func CurrentUserID(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(userIDContextKey).(int)
	if !ok {
		return 0, errors.New("user id not found in context")
	}
	return userID, nil
}

// WithUserID returns a context carrying the given identity. Intended for
// tests that exercise handlers without the full middleware stack.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}
