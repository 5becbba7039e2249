// Package api is the development stand-in for the scheduling backend.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/workerpool"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.ErrorLog("JSON encoding failed: %v", err)
	}
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, models.ErrorResponse{Error: msg})
}

// decodeJSON reads one JSON object and rejects unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondPoolError maps worker pool saturation to 503.
func respondPoolError(w http.ResponseWriter, err error) bool {
	if errors.Is(err, workerpool.ErrQueueFull) || errors.Is(err, workerpool.ErrPoolClosed) {
		respondError(w, http.StatusServiceUnavailable, "Server busy, try again later")
		return true
	}
	return false
}
