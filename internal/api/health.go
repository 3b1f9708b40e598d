// Copyright (c) 2026 Clipstream. All rights reserved.

// Package api contains the health check handler for the liveness probe.
package api

import (
	"log/slog"
	"net/http"

	"github.com/clipstream/clipstream/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers reported by
// the health endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandler creates the GET /api/health http.HandlerFunc.
//
// The probe always answers 200 while the process is alive; dependency
// states are informational, carried in the data payload.
func NewHealthHandler(deps HealthDependencies, logger *slog.Logger) http.HandlerFunc {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.health
}

// health handles GET /api/health.
func (handler *healthHandler) health(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, 2)

	// Check PostgreSQL
	if handler.dependencies.CheckDatabase != nil {
		result := checkResult{Name: "postgres", IsOK: true}
		if err := handler.dependencies.CheckDatabase(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			handler.logger.Error("health_check_failed", slog.String("dependency", "postgres"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	// Check Redis
	if handler.dependencies.CheckCache != nil {
		result := checkResult{Name: "redis", IsOK: true}
		if err := handler.dependencies.CheckCache(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			handler.logger.Error("health_check_failed", slog.String("dependency", "redis"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	respond.OK(writer, "ok", map[string]any{
		"status": "ok",
		"checks": results,
	})
}
