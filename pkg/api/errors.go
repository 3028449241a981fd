package api

import (
	"errors"
	"net/http"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/breaker"
	"github.com/devex-platform/crewd/pkg/lifecycle"
	"github.com/devex-platform/crewd/pkg/orchestrator"
	"github.com/devex-platform/crewd/pkg/pool"
	"github.com/devex-platform/crewd/pkg/services"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes. Worker execution
// failures never surface here; they are materialized in step records.
func (s *Server) respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr),
		errors.Is(err, orchestrator.ErrInvalidInput),
		errors.Is(err, agent.ErrUnknownTemplate),
		errors.Is(err, agent.ErrConfigValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, orchestrator.ErrUnknownWorkflow),
		errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, orchestrator.ErrInvalidControl),
		errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrDependencyBlocked),
		errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, pool.ErrPoolInstantiationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, breaker.ErrCircuitOpen):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		s.logger.Error("Unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
