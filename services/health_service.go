package services

import (
	"lumina_server/database"
	"time"

	"github.com/MonkyMars/gecho"
)

var startTime = time.Now()

type HealthService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewHealthService(logger *gecho.Logger, db *database.DB) *HealthService {
	return &HealthService{
		logger: logger,
		db:     db,
	}
}

// GetServerHealthStatus reports process-level liveness.
func (hs *HealthService) GetServerHealthStatus() map[string]any {
	return map[string]any{
		"status": "ok",
		"uptime": time.Since(startTime).String(),
	}
}

// GetDatabaseHealthStatus pings the database and reports pool statistics.
func (hs *HealthService) GetDatabaseHealthStatus() (map[string]any, error) {
	if err := hs.db.Health(); err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
		return nil, err
	}

	stats := hs.db.Stats()
	return map[string]any{
		"status":           "ok",
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
	}, nil
}
