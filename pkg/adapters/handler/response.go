package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message, StatusCode: status})
}

// handleError maps a primary-path error onto the envelope. Details of server-side
// failures are logged, not returned.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}
