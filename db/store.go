// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/coinflip/models"
)

// NewFlip is a flip about to be recorded. A zero CreatedAt lets the
// database default the timestamp.
type NewFlip struct {
	Result    string
	SessionID string
	UserIP    string
	UserID    *int64
	CreatedAt time.Time
}

// Store runs every query against the coin_flip table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InsertFlip appends one row and returns the id assigned by the database.
func (s *Store) InsertFlip(ctx context.Context, f NewFlip) (int64, error) {
	id, err := insertFlip(ctx, s.db, f)
	if err != nil {
		return 0, fmt.Errorf("insert flip: %w", err)
	}
	return id, nil
}

// InsertFlips appends all rows in one transaction. Either every row is
// committed or none is. Ids are returned in input order.
func (s *Store) InsertFlips(ctx context.Context, flips []NewFlip) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin flip batch: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(flips))
	for i, f := range flips {
		id, err := insertFlip(ctx, tx, f)
		if err != nil {
			return nil, fmt.Errorf("insert flip %d of %d: %w", i+1, len(flips), err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit flip batch: %w", err)
	}

	return ids, nil
}

func insertFlip(ctx context.Context, q execer, f NewFlip) (int64, error) {
	var userIP *string
	if f.UserIP != "" {
		userIP = &f.UserIP
	}

	var id int64
	var err error
	if f.CreatedAt.IsZero() {
		err = q.QueryRowContext(ctx, `
			INSERT INTO coin_flip (result, session_id, user_ip, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, f.Result, f.SessionID, userIP, f.UserID).Scan(&id)
	} else {
		err = q.QueryRowContext(ctx, `
			INSERT INTO coin_flip (result, session_id, user_ip, user_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, f.Result, f.SessionID, userIP, f.UserID, f.CreatedAt).Scan(&id)
	}
	return id, err
}

// TotalCount returns the number of flips ever recorded.
func (s *Store) TotalCount(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coin_flip`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count flips: %w", err)
	}
	return total, nil
}

// Breakdown returns one row per result present, with its share of all
// flips rounded to two decimals. The total is taken inside the same
// statement, so it may differ from a separate TotalCount call.
func (s *Store) Breakdown(ctx context.Context) ([]models.ResultBreakdown, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT result,
		       COUNT(*) AS count,
		       ROUND(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM coin_flip), 2) AS percentage
		FROM coin_flip
		GROUP BY result
		ORDER BY count DESC, result
	`)
	if err != nil {
		return nil, fmt.Errorf("query breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := []models.ResultBreakdown{}
	for rows.Next() {
		var b models.ResultBreakdown
		if err := rows.Scan(&b.Result, &b.Count, &b.Percentage); err != nil {
			return nil, fmt.Errorf("scan breakdown: %w", err)
		}
		breakdown = append(breakdown, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate breakdown: %w", err)
	}

	return breakdown, nil
}

// Recent returns the latest limit flips, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.RecentFlip, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT result, created_at
		FROM coin_flip
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent flips: %w", err)
	}
	defer rows.Close()

	recent := []models.RecentFlip{}
	for rows.Next() {
		var f models.RecentFlip
		if err := rows.Scan(&f.Result, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("scan recent flip: %w", err)
		}
		recent = append(recent, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent flips: %w", err)
	}

	return recent, nil
}

// Ping checks that the database answers a trivial round-trip.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
