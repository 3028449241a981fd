// crewd server turns natural-language project requests into pools of
// LLM-backed workers and drives their phased execution over HTTP and
// WebSocket.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/api"
	"github.com/devex-platform/crewd/pkg/breaker"
	"github.com/devex-platform/crewd/pkg/bus"
	"github.com/devex-platform/crewd/pkg/cache"
	"github.com/devex-platform/crewd/pkg/cleanup"
	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/database"
	"github.com/devex-platform/crewd/pkg/evolution"
	"github.com/devex-platform/crewd/pkg/lifecycle"
	"github.com/devex-platform/crewd/pkg/limiter"
	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/orchestrator"
	"github.com/devex-platform/crewd/pkg/pool"
	"github.com/devex-platform/crewd/pkg/services"
	"github.com/devex-platform/crewd/pkg/session"
	"github.com/devex-platform/crewd/pkg/version"
	"github.com/gin-gonic/gin"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	slog.Info("Starting crewd",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := dbClient.Close(); cerr != nil {
			slog.Error("Error closing database client", "error", cerr)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Cache
	cacheClient, err := cache.New(ctx, cfg.CacheURL, cfg.CacheTTL)
	if err != nil {
		slog.Error("Failed to connect to cache", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := cacheClient.Close(); cerr != nil {
			slog.Error("Error closing cache client", "error", cerr)
		}
	}()
	slog.Info("Connected to Redis cache")

	// 4. LLM client
	llmClient, err := llm.NewAnthropicClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "model", cfg.LLM.Model)

	logger := slog.Default()

	// 5. Agent registry and factory
	registry := agent.NewRegistry()
	if err := agent.RegisterBuiltins(registry); err != nil {
		slog.Error("Failed to register builtin templates", "error", err)
		os.Exit(1)
	}
	factory := agent.NewFactory(registry, llmClient, logger)
	slog.Info("Agent templates registered", "count", len(registry.TemplateIDs()))

	// 6. Message bus
	messageBus := bus.New(cfg.Bus, logger)
	messageBus.Start()
	defer messageBus.Stop()

	// 7. Persistence services and lifecycle manager
	store := services.NewStoreService(dbClient.Client)
	lifecycleMgr := lifecycle.NewManager(store, cacheClient, messageBus, logger)

	retention := cleanup.NewService(cfg.Retention, store, logger)
	retention.Start(ctx)
	defer retention.Stop()

	// 8. Execution guards
	executionLimiter := limiter.New(cfg.Limiter, logger)
	executionLimiter.Start()
	defer executionLimiter.Stop()
	breakers := breaker.NewRegistry(cfg.Breaker, func(err error) bool {
		return errors.Is(err, limiter.ErrTimeout)
	}, logger)

	// 9. Evolution engine and pool maker
	evolutionEngine := evolution.NewEngine(logger)
	maker := pool.NewMaker(pool.NewLLMAnalyzer(llmClient), factory, logger)

	// 10. WebSocket hub and orchestrator
	hub := api.NewHub(10*time.Second, logger)
	orch := orchestrator.New(orchestrator.Deps{
		Maker:     maker,
		Lifecycle: lifecycleMgr,
		Bus:       messageBus,
		Limiter:   executionLimiter,
		Breakers:  breakers,
		Evolution: evolutionEngine,
		Store:     store,
		Cache:     cacheClient,
		Prompts:   store,
		Sink:      hub,
		Logger:    logger,
	})

	// 11. HTTP server
	apiServer := api.NewServer(api.Deps{
		Runner:    orch,
		Lister:    store,
		DB:        dbClient,
		Bus:       messageBus,
		Lifecycle: lifecycleMgr,
		Limiter:   executionLimiter,
		Breakers:  breakers,
		Hub:       hub,
		Sessions:  session.NewTracker(),
		Logger:    logger,
	})

	engine := gin.New()
	engine.Use(gin.Recovery())
	apiServer.RegisterRoutes(engine)

	httpServer := &http.Server{
		Addr:              ":" + cfg.ServicePort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	slog.Info("crewd started successfully", "port", cfg.ServicePort)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case serveErr := <-errCh:
		slog.Error("Server error triggered shutdown", "error", serveErr)
	}

	// 13. Graceful shutdown: stop accepting requests, cancel active
	// workflows, then let the deferred closers run.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}

	for _, wf := range orch.ListActive("") {
		if err := orch.Cancel(shutdownCtx, wf.WorkflowID); err != nil {
			slog.Warn("Failed to cancel workflow during shutdown",
				"workflow_id", wf.WorkflowID, "error", err)
		}
	}

	slog.Info("crewd stopped")
}
