package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/taskward/taskward-server/internal/logger"
)

// Recovery turns handler panics into 500 responses instead of
// tearing down the connection.
type Recovery struct {
	logger *logger.Logger
}

// NewRecovery creates a new Recovery middleware.
func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// Handle recovers from panics, logs the stack and writes the generic
// internal error envelope.
func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.logger.Error("HTTP handler panicked",
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()))
				WriteInternalServerError(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
