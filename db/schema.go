// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	var schema string
	switch dialect {
	case Postgres:
		schema = postgresSchema
	case SQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dialect)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Coin flips (append-only)
CREATE TABLE IF NOT EXISTS coin_flip (
    id BIGSERIAL PRIMARY KEY,
    result TEXT NOT NULL CHECK (result IN ('heads', 'tails')),
    session_id TEXT NOT NULL,
    user_ip TEXT,
    user_id BIGINT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_coin_flip_created_at ON coin_flip(created_at);
CREATE INDEX IF NOT EXISTS idx_coin_flip_session_id ON coin_flip(session_id);
`

const sqliteSchema = `
-- Coin flips (append-only)
CREATE TABLE IF NOT EXISTS coin_flip (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    result TEXT NOT NULL CHECK (result IN ('heads', 'tails')),
    session_id TEXT NOT NULL,
    user_ip TEXT,
    user_id INTEGER,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_coin_flip_created_at ON coin_flip(created_at);
CREATE INDEX IF NOT EXISTS idx_coin_flip_session_id ON coin_flip(session_id);
`
