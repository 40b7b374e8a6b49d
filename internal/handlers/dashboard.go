// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"boostkit/internal/middleware"
	"boostkit/internal/store"
)

// Dashboard aggregates counts and analytics for the user's home screen.
type Dashboard struct {
	pageStore      *store.LandingPageStore
	proposalStore  *store.SalesProposalStore
	dealStore      *store.DealImageStore
	analyticsStore *store.AnalyticsStore
}

// NewDashboard creates a new Dashboard handler group.
func NewDashboard(pages *store.LandingPageStore, proposals *store.SalesProposalStore, deals *store.DealImageStore, analytics *store.AnalyticsStore) *Dashboard {
	return &Dashboard{
		pageStore:      pages,
		proposalStore:  proposals,
		dealStore:      deals,
		analyticsStore: analytics,
	}
}

// Overview returns the page list, proposal and image counts, and per-page
// analytics in one response.
func (d *Dashboard) Overview(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	pages, err := d.pageStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("dashboard pages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	proposals, err := d.proposalStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("dashboard proposals failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	images, err := d.dealStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("dashboard images failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	stats, err := d.analyticsStore.StatsByUser(sess.UserID)
	if err != nil {
		slog.Error("dashboard analytics failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	published := 0
	totalViews := 0
	for _, p := range pages {
		if p.IsPublished {
			published++
		}
		totalViews += p.ViewCount
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"pages":           pages,
		"page_count":      len(pages),
		"published_count": published,
		"proposal_count":  len(proposals),
		"image_count":     len(images),
		"total_views":     totalViews,
		"stats":           stats,
	})
}
