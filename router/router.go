// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/coinflip/cliparse"
	"github.com/danielhkuo/coinflip/coin"
	"github.com/danielhkuo/coinflip/db"
	"github.com/danielhkuo/coinflip/flip"
	"github.com/danielhkuo/coinflip/handlers"
	"github.com/danielhkuo/coinflip/middleware"
	"github.com/danielhkuo/coinflip/stats"
)

// NewRouter wires handlers to routes. conn may be nil when cfg.Stateless is set.
func NewRouter(conn *sql.DB, cfg cliparse.Config, src coin.Source) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	var (
		recorder flip.Recorder
		pinger   handlers.Pinger
		store    *db.Store
	)
	if !cfg.Stateless {
		store = db.NewStore(conn)
		recorder = store
		pinger = store
	}

	flipHandler := handlers.NewFlipHandler(flip.NewService(src, recorder))
	healthHandler := handlers.NewHealthHandler(pinger)
	infoHandler := handlers.NewInfoHandler(time.Now(), store != nil)

	// Health check (never fails the HTTP call)
	mux.HandleFunc("GET /health", middleware.WithLogging(healthHandler.Check))

	// Flips
	mux.HandleFunc("GET /flip", middleware.WithLogging(flipHandler.FlipOnce))
	mux.HandleFunc("GET /flip/{count}", middleware.WithLogging(flipHandler.FlipMany))

	// Statistics (persistent mode only)
	if store != nil {
		statsHandler := handlers.NewStatsHandler(stats.NewAggregator(store, cfg.RecentLimit))
		mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))
	}

	// API description and web page
	mux.HandleFunc("GET /api", middleware.WithLogging(infoHandler.APIInfo))
	mux.HandleFunc("GET /", middleware.WithLogging(infoHandler.Index))

	return mux
}
