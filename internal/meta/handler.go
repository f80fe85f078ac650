// Package meta exposes operational endpoints that are not part of the
// check-in domain.
package meta

import (
	"net/http"
	"time"

	"github.com/clubops/checkin-api/internal/config"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	cfg   *config.Config
	store store.Store
}

func NewHandler(cfg *config.Config, st store.Store) *Handler {
	return &Handler{
		cfg:   cfg,
		store: st,
	}
}

// Health reports liveness plus store connectivity. It pings whichever backend
// is configured; a failing ping degrades the status without hiding the app.
func (h *Handler) Health(c *gin.Context) {
	storeStatus := "up"
	status := http.StatusOK

	start := time.Now()
	if err := h.store.HealthCheck(c.Request.Context()); err != nil {
		logger.FromContext(c.Request.Context()).Error("store health check failed", "error", err)
		storeStatus = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"app":           h.cfg.App.Name,
		"env":           h.cfg.App.Env,
		"backend":       h.cfg.Store.Backend,
		"store":         storeStatus,
		"store_latency": time.Since(start).String(),
	})
}
