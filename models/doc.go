// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON payloads of the Coin Flip API.

# Response Types

Each endpoint has a matching response struct:

  - FlipResponse: GET /flip
  - FlipManyResponse: GET /flip/{count}
  - StatsResponse: GET /stats
  - HealthResponse: GET /health
  - APIInfoResponse: GET /api

Fields that only exist when flips are persisted (id, timestamp, saved_ids,
session_id) are omitted in stateless mode.

# Domain Types

ResultBreakdown and RecentFlip are the rows returned by the statistics
queries and are embedded verbatim in StatsResponse.

# Errors

All error responses share one envelope:

	{"error": "Bad Request", "message": "Count must be greater than 0"}
*/
package models
