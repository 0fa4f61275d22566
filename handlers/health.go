// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/coinflip/middleware"
	"github.com/danielhkuo/coinflip/models"
)

// pingTimeout bounds the database round-trip of a health check
const pingTimeout = 2 * time.Second

// Pinger is satisfied by *db.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler builds the health check. A nil pinger means there is
// no database to check (stateless mode).
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Check handles GET /health
// Always returns 200; a broken database is reported in the body
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:  models.StatusHealthy,
			Message: "API is running normally",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		slog.Warn("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:   models.StatusUnhealthy,
			Message:  "Database is unavailable",
			Database: models.DatabaseDisconnected,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:   models.StatusHealthy,
		Message:  "API is running normally",
		Database: models.DatabaseConnected,
	})
}
