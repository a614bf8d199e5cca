package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-task-api/internal/model"
	"go-task-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError converts any error into a `{"error": ...}` body. Typed API
// errors carry their own status; everything else is an opaque 500 so store
// failures are not misreported as client mistakes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "unexpected server error"

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		message = apiErr.Message
	} else {
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: message})
}
