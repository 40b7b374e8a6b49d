// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"boostkit/internal/cache"
	"boostkit/internal/models"
	"boostkit/internal/store"
)

// Public serves published landing pages to visitors. It checks the Valkey
// page cache before hitting the database, and records analytics events
// fire-and-forget so visitor latency never depends on the events table.
type Public struct {
	pageStore      *store.LandingPageStore
	analyticsStore *store.AnalyticsStore
	pageCache      *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil when
// Valkey is not configured.
func NewPublic(pageStore *store.LandingPageStore, analyticsStore *store.AnalyticsStore, pageCache *cache.PageCache) *Public {
	return &Public{
		pageStore:      pageStore,
		analyticsStore: analyticsStore,
		pageCache:      pageCache,
	}
}

// Page serves a published landing page by its slug. Cache hits still record
// a page view, so analytics stay accurate.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, slugParam); ok {
			p.recordView(r, slugParam)
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	page, err := p.pageStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find page by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	html := []byte(page.PageHTML)
	if p.pageCache != nil {
		p.pageCache.Set(ctx, slugParam, html)
	}

	p.recordEvent(r, page, models.EventPageView)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

type publicEventRequest struct {
	EventType models.EventType `json:"event_type"`
}

// Event records a CTA click or conversion reported by a visitor's browser.
// Page views are recorded server-side.
func (p *Public) Event(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	var req publicEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EventType != models.EventCTAClick && req.EventType != models.EventConversion {
		respondError(w, http.StatusBadRequest, "Unknown event type.")
		return
	}

	page, err := p.pageStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find page for event failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if page == nil {
		respondError(w, http.StatusNotFound, "Page not found.")
		return
	}

	p.recordEvent(r, page, req.EventType)
	respondJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}

// recordView resolves the cached page's row and records a view without
// blocking the response.
func (p *Public) recordView(r *http.Request, slugParam string) {
	ip := r.RemoteAddr
	ua := r.UserAgent()
	go func() {
		page, err := p.pageStore.FindBySlug(slugParam)
		if err != nil || page == nil {
			return
		}
		if err := p.analyticsStore.Record(page.UserID, &page.ID, models.EventPageView, ip, ua); err != nil {
			slog.Warn("record page view failed", "error", err)
		}
		if err := p.pageStore.IncrementViewCount(page.ID); err != nil {
			slog.Warn("increment view count failed", "error", err)
		}
	}()
}

// recordEvent records an event for an already-loaded page row without
// blocking the response.
func (p *Public) recordEvent(r *http.Request, page *models.LandingPage, event models.EventType) {
	ip := r.RemoteAddr
	ua := r.UserAgent()
	pageID := page.ID
	userID := page.UserID
	go func() {
		if err := p.analyticsStore.Record(userID, &pageID, event, ip, ua); err != nil {
			slog.Warn("record analytics event failed", "event", event, "error", err)
		}
		if event == models.EventPageView {
			if err := p.pageStore.IncrementViewCount(pageID); err != nil {
				slog.Warn("increment view count failed", "error", err)
			}
		}
	}()
}
