package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemStats handles GET /api/v1/system/stats: execution limiter
// rollups, per-template circuit states, agent health, and workflow
// counts.
func (s *Server) SystemStats(c *gin.Context) {
	body := gin.H{}

	if s.limiter != nil {
		body["executions"] = s.limiter.Stats()
	}
	if s.breakers != nil {
		body["circuits"] = s.breakers.States()
	}
	if s.lifecycle != nil {
		health := s.lifecycle.HealthCheck()
		body["agents"] = gin.H{
			"total":    health.Total,
			"by_state": health.ByState,
			"active":   s.lifecycle.ActiveCount(),
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
