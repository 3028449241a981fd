package api

import (
	"context"
	"net/http"
	"time"

	"github.com/devex-platform/crewd/pkg/database"
	"github.com/gin-gonic/gin"
)

// Health handles GET /healthz. Reports database reachability, agent
// health, and the count of active workflows. Database failure makes the
// whole service unhealthy; everything else is informational.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		body["database"] = dbHealth
		if err != nil {
			body["status"] = "unhealthy"
			body["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}

	if s.lifecycle != nil {
		health := s.lifecycle.HealthCheck()
		body["agents"] = health
		if len(health.Unhealthy) > 0 {
			body["status"] = "degraded"
		}
	}
	if s.runner != nil {
		body["active_workflows"] = len(s.runner.ListActive(""))
	}
	if s.hub != nil {
		body["ws_connections"] = s.hub.ActiveConnections()
	}

	c.JSON(http.StatusOK, body)
}
