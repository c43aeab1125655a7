package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskward/taskward-server/internal/api/http/middleware"
	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/model"
)

// handleError maps a service error onto the stable external response.
// APIErrors pass through with their status; anything else is logged
// and reported as a generic internal error.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		middleware.WriteErrorResponse(w, apiErr)
		return
	}

	log.Error("HTTP handler: request failed", "error", err.Error())
	middleware.WriteInternalServerError(w)
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
