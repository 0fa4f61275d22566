// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/coinflip/middleware"
	"github.com/danielhkuo/coinflip/models"
)

// Version is reported by GET /api.
const Version = "1.0.0"

//go:embed static/index.html
var indexHTML []byte

type InfoHandler struct {
	started    time.Time
	persistent bool
}

func NewInfoHandler(started time.Time, persistent bool) *InfoHandler {
	return &InfoHandler{started: started, persistent: persistent}
}

// APIInfo handles GET /api
func (h *InfoHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"flip":          "/flip",
		"flip_multiple": "/flip/{count}",
		"health":        "/health",
	}
	mode := "stateless"
	if h.persistent {
		endpoints["stats"] = "/stats"
		mode = "persistent"
	}

	middleware.JSONResponse(w, http.StatusOK, models.APIInfoResponse{
		Message:   "Coin Flip API",
		Version:   Version,
		Mode:      mode,
		Started:   humanize.Time(h.started),
		Endpoints: endpoints,
	})
}

// Index handles GET / with the embedded web page
// Any other unmatched path is a 404
func (h *InfoHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}
