package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
)

// User-visible error strings. Internal details stay in the logs.
const (
	errNameAndEmailRequired = "Name and email required"
	errInvalidBody          = "Invalid request body"
	errDB                   = "DB error"
)

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, models.ErrorResponse{Success: false, Error: msg})
}
