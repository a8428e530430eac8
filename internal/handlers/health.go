package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks that a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler reports whether the database answers.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 503 {object} handlers.ErrorResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}
