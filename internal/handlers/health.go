package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studhub/eventrec/internal/config"
)

type HealthHandler struct {
	cfg     *config.Config
	started time.Time
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		cfg:     cfg,
		started: time.Now(),
	}
}

// Check reports liveness. The scoring engine has no external dependencies of
// its own; Redis and Kafka are optional and only reported, never fatal.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).String(),
		"services": gin.H{
			"cache":     enabledLabel(h.cfg.Redis.URL != ""),
			"messaging": enabledLabel(len(h.cfg.Kafka.Brokers) > 0),
		},
	})
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
