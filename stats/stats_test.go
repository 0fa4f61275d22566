// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/coinflip/db"
	"github.com/danielhkuo/coinflip/models"
	"github.com/danielhkuo/coinflip/testutil"
)

type fakeQuerier struct {
	total     int64
	breakdown []models.ResultBreakdown
	recent    []models.RecentFlip
	failOn    string
	calls     int
	lastLimit int
}

func (f *fakeQuerier) TotalCount(ctx context.Context) (int64, error) {
	f.calls++
	if f.failOn == "total" {
		return 0, errors.New("boom")
	}
	return f.total, nil
}

func (f *fakeQuerier) Breakdown(ctx context.Context) ([]models.ResultBreakdown, error) {
	f.calls++
	if f.failOn == "breakdown" {
		return nil, errors.New("boom")
	}
	return f.breakdown, nil
}

func (f *fakeQuerier) Recent(ctx context.Context, limit int) ([]models.RecentFlip, error) {
	f.calls++
	f.lastLimit = limit
	if f.failOn == "recent" {
		return nil, errors.New("boom")
	}
	return f.recent, nil
}

func TestGetStatisticsComposesQueries(t *testing.T) {
	at := time.Date(2025, 2, 2, 10, 0, 0, 0, time.UTC)
	q := &fakeQuerier{
		total: 4,
		breakdown: []models.ResultBreakdown{
			{Result: "heads", Count: 3, Percentage: 75},
			{Result: "tails", Count: 1, Percentage: 25},
		},
		recent: []models.RecentFlip{{Result: "tails", Timestamp: at}},
	}
	agg := NewAggregator(q, 5)

	report, err := agg.GetStatistics(context.Background())
	if err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}

	if report.TotalFlips != 4 {
		t.Errorf("Expected total 4, got %d", report.TotalFlips)
	}
	if len(report.ResultsBreakdown) != 2 || report.ResultsBreakdown[0].Percentage != 75 {
		t.Errorf("Unexpected breakdown: %+v", report.ResultsBreakdown)
	}
	if len(report.RecentFlips) != 1 || !report.RecentFlips[0].Timestamp.Equal(at) {
		t.Errorf("Unexpected recent flips: %+v", report.RecentFlips)
	}
	if q.lastLimit != 5 {
		t.Errorf("Expected recent limit 5, got %d", q.lastLimit)
	}
}

func TestGetStatisticsDefaultLimit(t *testing.T) {
	q := &fakeQuerier{}
	agg := NewAggregator(q, 0)

	if _, err := agg.GetStatistics(context.Background()); err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}
	if q.lastLimit != DefaultRecentLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultRecentLimit, q.lastLimit)
	}
}

func TestGetStatisticsFailures(t *testing.T) {
	for _, step := range []string{"total", "breakdown", "recent"} {
		t.Run(step, func(t *testing.T) {
			agg := NewAggregator(&fakeQuerier{failOn: step}, 10)

			_, err := agg.GetStatistics(context.Background())
			if !errors.Is(err, ErrPersistence) {
				t.Errorf("Expected ErrPersistence, got %v", err)
			}
		})
	}
}

func TestGetStatisticsIsNotCached(t *testing.T) {
	q := &fakeQuerier{}
	agg := NewAggregator(q, 10)

	for i := 0; i < 3; i++ {
		if _, err := agg.GetStatistics(context.Background()); err != nil {
			t.Fatalf("GetStatistics failed: %v", err)
		}
	}
	if q.calls != 9 {
		t.Errorf("Expected 9 queries for 3 reports, got %d", q.calls)
	}
}

func TestGetStatisticsAgainstSQLite(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := db.NewStore(conn)
	ctx := context.Background()
	base := time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC)
	for i, r := range []string{"heads", "heads", "tails", "heads"} {
		_, err := store.InsertFlip(ctx, db.NewFlip{
			Result:    r,
			SessionID: "s",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("InsertFlip failed: %v", err)
		}
	}

	report, err := NewAggregator(store, 3).GetStatistics(ctx)
	if err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}

	if report.TotalFlips != 4 {
		t.Errorf("Expected 4 flips, got %d", report.TotalFlips)
	}
	if len(report.RecentFlips) != 3 {
		t.Errorf("Expected 3 recent flips, got %d", len(report.RecentFlips))
	}
	if report.ResultsBreakdown[0].Result != "heads" || report.ResultsBreakdown[0].Percentage != 75 {
		t.Errorf("Expected heads at 75%%, got %+v", report.ResultsBreakdown[0])
	}
}
