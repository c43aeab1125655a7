package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/taskward/taskward-server/internal/model"
)

// ErrorResponseBody is the unified error envelope returned by every
// endpoint. The message is always the stable external one; internal
// causes never appear here.
type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteErrorResponse writes an APIError with its status and envelope.
func WriteErrorResponse(w http.ResponseWriter, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(ErrorResponseBody{
		Code:    apiErr.Code,
		Message: apiErr.Message,
	})
}

// WriteInternalServerError writes the generic 500 envelope. Details
// belong in the logs only.
func WriteInternalServerError(w http.ResponseWriter) {
	WriteErrorResponse(w, &model.APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	})
}
