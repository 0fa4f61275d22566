// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/coinflip/flip"
	"github.com/danielhkuo/coinflip/middleware"
	"github.com/danielhkuo/coinflip/models"
)

const msgInternalError = "Internal server error"

type FlipHandler struct {
	svc *flip.Service
}

func NewFlipHandler(svc *flip.Service) *FlipHandler {
	return &FlipHandler{svc: svc}
}

// FlipOnce handles GET /flip
func (h *FlipHandler) FlipOnce(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.FlipOnce(r.Context(), flip.Meta{UserIP: middleware.GetClientIP(r)})
	if err != nil {
		slog.Error("failed to flip coin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	response := models.FlipResponse{
		Result:  res.Outcome.String(),
		Message: fmt.Sprintf("Result: %s", res.Outcome),
		ID:      res.ID,
	}
	if res.ID != nil {
		at := res.At
		response.Timestamp = &at
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// FlipMany handles GET /flip/{count}
// Returns 400 if count is not an integer in 1..100
func (h *FlipHandler) FlipMany(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.PathValue("count"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Count must be an integer")
		return
	}

	batch, err := h.svc.FlipMany(r.Context(), count, flip.Meta{UserIP: middleware.GetClientIP(r)})
	switch {
	case errors.Is(err, flip.ErrCountNotPositive):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Count must be greater than 0")
		return
	case errors.Is(err, flip.ErrCountTooLarge):
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Maximum number of flips: %d", flip.MaxCount))
		return
	case err != nil:
		slog.Error("failed to flip coins", "count", count, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	results := make([]string, len(batch.Outcomes))
	for i, o := range batch.Outcomes {
		results[i] = o.String()
	}

	middleware.JSONResponse(w, http.StatusOK, models.FlipManyResponse{
		Results: results,
		Summary: models.FlipSummary{
			Total: batch.Tally.Total(),
			Heads: batch.Tally.Heads,
			Tails: batch.Tally.Tails,
		},
		Message:   fmt.Sprintf("Flipped %d coins", count),
		SavedIDs:  batch.IDs,
		SessionID: batch.SessionID,
	})
}
