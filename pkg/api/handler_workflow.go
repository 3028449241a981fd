package api

import (
	"context"
	"net/http"

	"github.com/devex-platform/crewd/pkg/models"
	"github.com/gin-gonic/gin"
)

// CreateWorkflowRequest is the body for POST /api/v1/workflows.
type CreateWorkflowRequest struct {
	Description string                 `json:"description" binding:"required"`
	SessionID   string                 `json:"session_id"`
	UserID      string                 `json:"user_id"`
	Options     models.WorkflowOptions `json:"options"`
}

// CreateWorkflow handles POST /api/v1/workflows: analyze the request,
// instantiate the pool, and return the planned workflow without running it.
func (s *Server) CreateWorkflow(c *gin.Context) {
	var req CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.sessions != nil {
		req.SessionID = s.sessions.Ensure(req.SessionID, req.UserID)
	}

	wf, err := s.runner.CreateWorkflow(c.Request.Context(), req.Description, req.SessionID, req.UserID, req.Options)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if s.sessions != nil {
		s.sessions.Attach(wf.SessionID, wf.WorkflowID)
	}
	c.JSON(http.StatusCreated, wf)
}

// ExecuteWorkflow handles POST /api/v1/workflows/:id/execute. Execution
// runs in the background; progress streams over the WebSocket.
func (s *Server) ExecuteWorkflow(c *gin.Context) {
	workflowID := c.Param("id")

	wf, err := s.runner.Status(c.Request.Context(), workflowID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if wf.Status != models.WorkflowPending {
		c.JSON(http.StatusConflict, gin.H{"error": "workflow is " + string(wf.Status)})
		return
	}

	go func() {
		if _, execErr := s.runner.ExecuteWorkflow(context.Background(), workflowID); execErr != nil {
			s.logger.Error("Workflow execution failed to start",
				"workflow_id", workflowID, "error", execErr)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"workflow_id": workflowID,
		"status":      string(models.WorkflowInProgress),
	})
}

// GetWorkflow handles GET /api/v1/workflows/:id.
func (s *Server) GetWorkflow(c *gin.Context) {
	wf, err := s.runner.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"workflow":      wf,
		"progress":      wf.Progress(),
		"percentage":    wf.Percentage(),
		"current_phase": wf.CurrentPhase(),
	})
}

// ListWorkflows handles GET /api/v1/workflows?user_id=&active=.
func (s *Server) ListWorkflows(c *gin.Context) {
	userID := c.Query("user_id")
	activeOnly := c.Query("active") == "true"

	if activeOnly || s.lister == nil {
		c.JSON(http.StatusOK, gin.H{"workflows": s.runner.ListActive(userID)})
		return
	}

	workflows, err := s.lister.ListWorkflows(c.Request.Context(), userID, 100)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflows": workflows})
}

// PauseWorkflow handles POST /api/v1/workflows/:id/pause.
func (s *Server) PauseWorkflow(c *gin.Context) {
	if err := s.runner.Pause(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.WorkflowPaused)})
}

// ResumeWorkflow handles POST /api/v1/workflows/:id/resume.
func (s *Server) ResumeWorkflow(c *gin.Context) {
	if err := s.runner.Resume(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.WorkflowInProgress)})
}

// CancelWorkflow handles POST /api/v1/workflows/:id/cancel.
func (s *Server) CancelWorkflow(c *gin.Context) {
	if err := s.runner.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.WorkflowCancelled)})
}
