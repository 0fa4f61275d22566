// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/coinflip/models"
)

// DefaultRecentLimit is the number of recent flips in a report.
const DefaultRecentLimit = 10

var ErrPersistence = errors.New("statistics unavailable")

// Querier runs the read queries behind a report. *db.Store satisfies it.
type Querier interface {
	TotalCount(ctx context.Context) (int64, error)
	Breakdown(ctx context.Context) ([]models.ResultBreakdown, error)
	Recent(ctx context.Context, limit int) ([]models.RecentFlip, error)
}

type Aggregator struct {
	q           Querier
	recentLimit int
}

// NewAggregator builds an Aggregator. A non-positive limit falls back to
// DefaultRecentLimit.
func NewAggregator(q Querier, recentLimit int) *Aggregator {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Aggregator{q: q, recentLimit: recentLimit}
}

// GetStatistics queries the store on every call; nothing is cached.
// The three queries are not run in a snapshot, so the total may lag or lead
// the breakdown under concurrent writes.
func (a *Aggregator) GetStatistics(ctx context.Context) (models.StatsResponse, error) {
	total, err := a.q.TotalCount(ctx)
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	breakdown, err := a.q.Breakdown(ctx)
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	recent, err := a.q.Recent(ctx, a.recentLimit)
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return models.StatsResponse{
		TotalFlips:       total,
		ResultsBreakdown: breakdown,
		RecentFlips:      recent,
	}, nil
}
