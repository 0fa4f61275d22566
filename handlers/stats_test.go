// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/coinflip/db"
	"github.com/danielhkuo/coinflip/models"
	"github.com/danielhkuo/coinflip/stats"
	"github.com/danielhkuo/coinflip/testutil"
)

func TestGetStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	base := time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC)
	results := []string{"heads", "tails", "tails", "heads", "tails"}
	for i, r := range results {
		testutil.InsertTestFlip(t, conn, r, base.Add(time.Duration(i)*time.Minute))
	}

	handler := NewStatsHandler(stats.NewAggregator(db.NewStore(conn), 2))

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalFlips != 5 {
		t.Errorf("Expected 5 total flips, got %d", resp.TotalFlips)
	}

	if len(resp.ResultsBreakdown) != 2 {
		t.Fatalf("Expected 2 breakdown rows, got %d", len(resp.ResultsBreakdown))
	}
	if resp.ResultsBreakdown[0].Result != "tails" || resp.ResultsBreakdown[0].Count != 3 {
		t.Errorf("Expected tails=3 first, got %+v", resp.ResultsBreakdown[0])
	}
	sum := 0.0
	for _, b := range resp.ResultsBreakdown {
		sum += b.Percentage
	}
	if math.Abs(sum-100) > 0.02 {
		t.Errorf("Expected percentages to sum to ~100, got %v", sum)
	}

	if len(resp.RecentFlips) != 2 {
		t.Fatalf("Expected 2 recent flips, got %d", len(resp.RecentFlips))
	}
	if resp.RecentFlips[0].Result != "tails" || !resp.RecentFlips[0].Timestamp.Equal(base.Add(4*time.Minute)) {
		t.Errorf("Expected newest flip first, got %+v", resp.RecentFlips[0])
	}
}

func TestGetStatsEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewStatsHandler(stats.NewAggregator(db.NewStore(conn), 10))

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalFlips != 0 {
		t.Errorf("Expected 0 flips, got %d", resp.TotalFlips)
	}
	if resp.ResultsBreakdown == nil || resp.RecentFlips == nil {
		t.Error("Expected empty arrays rather than null")
	}
}

func TestGetStatsDatabaseDown(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewStatsHandler(stats.NewAggregator(db.NewStore(conn), 10))
	conn.Close()

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStats(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
