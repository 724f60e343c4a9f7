package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting whether the store answers.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 500 {object} models.ErrorResponse "DB error"
// @Router /health [get]
func NewHealthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeError(w, http.StatusInternalServerError, errDB)
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Success: true})
	}
}
