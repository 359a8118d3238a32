package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"littlewords/internal/service"
	"littlewords/internal/validation"
)

// errorResponse is the JSON body returned for every failed request
type errorResponse struct {
	Error string `json:"error"`
}

func respondWithError(logger *zap.Logger, w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		logger.Error(userMsg, zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps core failures onto HTTP statuses:
// stale or unknown references are 404, validation failures 400,
// persistence failures 500.
func respondWithServiceError(logger *zap.Logger, w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Message})
	case errors.Is(err, service.ErrNoLanguages):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		respondWithError(logger, w, http.StatusInternalServerError, "failed to save changes", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
