package models

import "time"

// Health status constants
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Database connectivity constants
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// Response types

type FlipResponse struct {
	Result    string     `json:"result"`
	Message   string     `json:"message"`
	ID        *int64     `json:"id,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type FlipSummary struct {
	Total int `json:"total"`
	Heads int `json:"heads"`
	Tails int `json:"tails"`
}

type FlipManyResponse struct {
	Results   []string    `json:"results"`
	Summary   FlipSummary `json:"summary"`
	Message   string      `json:"message"`
	SavedIDs  []int64     `json:"saved_ids,omitempty"`
	SessionID string      `json:"session_id,omitempty"`
}

type StatsResponse struct {
	TotalFlips       int64             `json:"total_flips"`
	ResultsBreakdown []ResultBreakdown `json:"results_breakdown"`
	RecentFlips      []RecentFlip      `json:"recent_flips"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database,omitempty"`
}

type APIInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Mode      string            `json:"mode"`
	Started   string            `json:"started"`
	Endpoints map[string]string `json:"endpoints"`
}

// Domain types

type ResultBreakdown struct {
	Result     string  `json:"result"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RecentFlip struct {
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
