// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL driver and schema flavor.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect accepts "postgres" (or "postgresql") and "sqlite".
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("unknown database type %q (want postgres or sqlite)", s)
}

// Open opens the connection pool shared by every request.
// The caller owns the pool and must Close it on shutdown.
func Open(dialect Dialect, url string) (*sql.DB, error) {
	var driver string
	switch dialect {
	case Postgres:
		driver = "postgres"
	case SQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	// SQLite allows a single writer; an in-memory database also lives
	// only as long as its one connection.
	if dialect == SQLite {
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
