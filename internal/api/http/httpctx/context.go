// Package httpctx carries the authenticated user ID on request
// contexts.
package httpctx

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type so no other package can collide with
// the values stored here.
type contextKey string

const userIDKey contextKey = "user_id"

// Manager implements model.ContextManager over plain context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user ID set by the authenticate
// middleware. The second return is false for requests that never
// passed authentication.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
