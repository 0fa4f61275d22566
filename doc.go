// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Coin Flip API server.

Coin Flip simulates fair coin tosses over HTTP and, unless run stateless,
records every toss so that aggregate statistics can be served.

# Starting the Server

With a local PostgreSQL running, no configuration is needed:

	go run .

Or pick another database or mode with flags:

	go run . -p 8000 -t sqlite -d "file:flips.db"
	go run . -stateless

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): Connection string (default: local PostgreSQL)
  - DATABASE_TYPE (-t): postgres or sqlite
  - STATELESS (-stateless): Do not record flips
  - RECENT_LIMIT (-recent): Rows in recent_flips (default: 10)
  - CORS_ORIGINS: Allowed origins (default: *)

Values may also come from a .env file.

# Architecture

  - coin: Randomness source
  - flip: Single and multi-coin flips, persistence of results
  - stats: Statistics report
  - db: Connection, schema and queries
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, CORS, request ids, JSON helpers
  - models: Response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
