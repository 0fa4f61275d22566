// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/coinflip/cliparse"
	"github.com/danielhkuo/coinflip/db"
)

// TestDBURL is an in-memory SQLite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  TestDBURL,
		DatabaseType: string(db.SQLite),
		RecentLimit:  10,
		CORSOrigins:  []string{"*"},
	}
}

// InsertTestFlip records a flip directly and returns its ID
func InsertTestFlip(t *testing.T, conn *sql.DB, result string, at time.Time) int64 {
	t.Helper()

	id, err := db.NewStore(conn).InsertFlip(t.Context(), db.NewFlip{
		Result:    result,
		SessionID: "test-session",
		UserIP:    "127.0.0.1",
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("Failed to insert test flip: %v", err)
	}

	return id
}

// CountFlips returns the number of rows in coin_flip
func CountFlips(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM coin_flip`).Scan(&n); err != nil {
		t.Fatalf("Failed to count flips: %v", err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
