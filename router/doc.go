// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Coin Flip API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg, coin.NewCrypto())

# Endpoints

	GET /              - Web page
	GET /api           - Route description
	GET /health        - Liveness and database status
	GET /flip          - Flip one coin
	GET /flip/{count}  - Flip 1..100 coins
	GET /stats         - Totals, breakdown and recent flips (persistent mode)

# Handler Initialization

In persistent mode a single db.Store over the shared pool backs the flip
service, the statistics aggregator and the health check. With
cfg.Stateless set, conn is ignored, flips are not recorded and /stats is
not registered.
*/
package router
