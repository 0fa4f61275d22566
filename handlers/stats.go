// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/coinflip/middleware"
	"github.com/danielhkuo/coinflip/stats"
)

type StatsHandler struct {
	agg *stats.Aggregator
}

func NewStatsHandler(agg *stats.Aggregator) *StatsHandler {
	return &StatsHandler{agg: agg}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.agg.GetStatistics(r.Context())
	if err != nil {
		slog.Error("failed to build statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	slog.Debug("statistics served", "total_flips", humanize.Comma(report.TotalFlips))
	middleware.JSONResponse(w, http.StatusOK, report)
}
