package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskward/taskward-server/internal/api/http/httpctx"
	"github.com/taskward/taskward-server/internal/testutil"
)

func TestStatusRecorder(t *testing.T) {
	t.Run("explicit status", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
		rec.WriteHeader(http.StatusNotFound)
		assert.Equal(t, http.StatusNotFound, rec.statusCode)

		// A late second WriteHeader does not overwrite the recorded one.
		rec.WriteHeader(http.StatusOK)
		assert.Equal(t, http.StatusNotFound, rec.statusCode)
	})

	t.Run("implicit 200 on first write", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
		_, err := rec.Write([]byte("{}"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.statusCode)
	})
}

func TestLogging_Handle(t *testing.T) {
	m := NewLogging(testutil.MakeNoopLogger(), httpctx.NewManager())

	statuses := []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError}
	for _, status := range statuses {
		handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		// The middleware must not alter the handler's response.
		assert.Equal(t, status, rec.Code)
	}
}
