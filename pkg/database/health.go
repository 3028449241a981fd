package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus summarizes connection pool health for /healthz.
type HealthStatus struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
}

// Health pings the database and returns pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stats := db.Stats()
	status := HealthStatus{
		Status:          "healthy",
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
	}

	if err := db.PingContext(ctx); err != nil {
		status.Status = "unhealthy"
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	return status, nil
}
