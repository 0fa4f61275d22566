// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /flip", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Server Stack

Stack wraps the whole mux with panic recovery and request ids from
chi's middleware package, plus CORS from go-chi/cors:

	server := http.Server{
		Handler: middleware.Stack(mux, cfg.CORSOrigins),
	}

The request id is echoed in the X-Request-Id response header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

The address is recorded with each flip as-is.
*/
package middleware
