package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListSessions handles GET /api/v1/sessions?user_id=.
func (s *Server) ListSessions(c *gin.Context) {
	if s.sessions == nil {
		c.JSON(http.StatusOK, gin.H{"sessions": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": s.sessions.List(c.Query("user_id"))})
}

// GetSession handles GET /api/v1/sessions/:id. Returns the session with
// the current status of every workflow it spawned.
func (s *Server) GetSession(c *gin.Context) {
	if s.sessions == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session tracking not available"})
		return
	}

	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	workflows := make([]gin.H, 0, len(sess.WorkflowIDs))
	for _, id := range sess.WorkflowIDs {
		wf, serr := s.runner.Status(c.Request.Context(), id)
		if serr != nil {
			continue
		}
		workflows = append(workflows, gin.H{
			"workflow_id": wf.WorkflowID,
			"name":        wf.Name,
			"status":      wf.Status,
			"progress":    wf.Progress(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"session":   sess,
		"workflows": workflows,
	})
}
