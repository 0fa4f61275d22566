// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Coin Flip API.

# Handler Types

Each handler is a struct holding the service it translates to HTTP:

  - FlipHandler: single and multi-coin flips (flip.Service)
  - StatsHandler: aggregate statistics (stats.Aggregator)
  - HealthHandler: liveness and database round-trip (Pinger)
  - InfoHandler: route description and the embedded web page

Handlers are created via constructor functions:

	flipHandler := handlers.NewFlipHandler(flip.NewService(src, store))

# Status Codes

	GET /flip          200, 500 on storage failure
	GET /flip/{count}  200, 400 on a bad count, 500 on storage failure
	GET /stats         200, 500 on storage failure
	GET /health        always 200, status field reports health

Storage errors are logged in full; clients only see "Internal server error".
*/
package handlers
