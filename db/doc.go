// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the persistence layer for recorded flips.

# Connection

Open returns the single pool shared by all requests. PostgreSQL (lib/pq) is
the default; SQLite (modernc.org/sqlite) is supported for local runs and tests:

	conn, err := db.Open(db.Postgres, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

# Schema Creation

CreateSchema initializes the coin_flip table for the given dialect:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

  - coin_flip: one append-only row per flip (id, result, session_id,
    user_ip, user_id, created_at)

The id is assigned by the database. user_id is reserved for a future user
table and is always NULL today.

# Queries

Store wraps the pool:

	store := db.NewStore(conn)
	id, err := store.InsertFlip(ctx, db.NewFlip{Result: "heads", SessionID: sid})
	ids, err := store.InsertFlips(ctx, batch) // one transaction
	total, err := store.TotalCount(ctx)
	shares, err := store.Breakdown(ctx)
	recent, err := store.Recent(ctx, 10)

No application-level locking is used; concurrent requests rely on the
database's own isolation.
*/
package db
