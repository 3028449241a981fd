// Package api exposes the HTTP and WebSocket surface of the runtime.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/devex-platform/crewd/pkg/breaker"
	"github.com/devex-platform/crewd/pkg/bus"
	"github.com/devex-platform/crewd/pkg/database"
	"github.com/devex-platform/crewd/pkg/lifecycle"
	"github.com/devex-platform/crewd/pkg/limiter"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/devex-platform/crewd/pkg/orchestrator"
	"github.com/devex-platform/crewd/pkg/session"
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// WorkflowRunner is the orchestration surface the handlers call.
type WorkflowRunner interface {
	CreateWorkflow(ctx context.Context, userText, sessionID, userID string, opts models.WorkflowOptions) (*models.Workflow, error)
	ExecuteWorkflow(ctx context.Context, workflowID string) (*orchestrator.ExecutionReport, error)
	Pause(ctx context.Context, workflowID string) error
	Resume(ctx context.Context, workflowID string) error
	Cancel(ctx context.Context, workflowID string) error
	Status(ctx context.Context, workflowID string) (*models.Workflow, error)
	ListActive(userID string) []models.Workflow
}

// WorkflowLister reads persisted workflows for the list endpoint.
type WorkflowLister interface {
	ListWorkflows(ctx context.Context, userID string, limit int) ([]models.Workflow, error)
}

// Server represents the API server.
type Server struct {
	runner    WorkflowRunner
	lister    WorkflowLister
	db        *database.Client
	bus       *bus.Bus
	lifecycle *lifecycle.Manager
	limiter   *limiter.Limiter
	breakers  *breaker.Registry
	hub       *Hub
	sessions  *session.Tracker
	logger    *slog.Logger
}

// Deps bundles the server's collaborators. db, bus, lifecycle, limiter,
// breakers, lister, hub, and sessions may each be nil; the corresponding
// endpoints degrade gracefully.
type Deps struct {
	Runner    WorkflowRunner
	Lister    WorkflowLister
	DB        *database.Client
	Bus       *bus.Bus
	Lifecycle *lifecycle.Manager
	Limiter   *limiter.Limiter
	Breakers  *breaker.Registry
	Hub       *Hub
	Sessions  *session.Tracker
	Logger    *slog.Logger
}

// NewServer creates a new API server.
func NewServer(d Deps) *Server {
	return &Server{
		runner:    d.Runner,
		lister:    d.Lister,
		db:        d.DB,
		bus:       d.Bus,
		lifecycle: d.Lifecycle,
		limiter:   d.Limiter,
		breakers:  d.Breakers,
		hub:       d.Hub,
		sessions:  d.Sessions,
		logger:    d.Logger.With("component", "api"),
	}
}

// RegisterRoutes installs all routes on the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/workflows", s.CreateWorkflow)
		v1.GET("/workflows", s.ListWorkflows)
		v1.GET("/workflows/:id", s.GetWorkflow)
		v1.POST("/workflows/:id/execute", s.ExecuteWorkflow)
		v1.POST("/workflows/:id/pause", s.PauseWorkflow)
		v1.POST("/workflows/:id/resume", s.ResumeWorkflow)
		v1.POST("/workflows/:id/cancel", s.CancelWorkflow)
		v1.GET("/sessions", s.ListSessions)
		v1.GET("/sessions/:id", s.GetSession)
		v1.GET("/system/stats", s.SystemStats)
		v1.GET("/ws", s.HandleWS)
	}
}

// HandleWS upgrades the connection and hands it to the hub. Blocks until
// the WebSocket closes.
func (s *Server) HandleWS(c *gin.Context) {
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	s.hub.HandleConnection(c.Request.Context(), conn)
}
