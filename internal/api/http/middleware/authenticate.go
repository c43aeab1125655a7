// Package middleware provides the HTTP middleware chain.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/model"
)

// SessionCookieName is the cookie carrying the session token for
// browser clients. API clients use the Authorization header instead.
const SessionCookieName = "session_token"

// SessionResolver maps a presented session token to a user ID.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionToken string) (uuid.UUID, error)
}

// Authenticate validates session tokens and injects the user ID into
// the request context. Requests without a valid identity are rejected
// before any handler or store access runs.
type Authenticate struct {
	sessions       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// Handle extracts the token from the Authorization header or the
// session cookie, resolves it and calls next with the user ID on the
// context. Every failure mode yields the same 401 envelope.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := tokenFromRequest(r)

		userID, err := m.sessions.ResolveSession(r.Context(), tokenString)
		if err != nil || userID == uuid.Nil {
			WriteErrorResponse(w, model.NewUnauthenticatedError())
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
