// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"boostkit/internal/builder"
	"boostkit/internal/cache"
	"boostkit/internal/catalog"
	"boostkit/internal/middleware"
	"boostkit/internal/models"
	"boostkit/internal/slug"
	"boostkit/internal/store"
)

// Pages groups handlers for the landing page builder: preview, save,
// publish, and download. Generation is deterministic — the same draft
// always yields byte-identical HTML.
type Pages struct {
	pageStore *store.LandingPageStore
	pageCache *cache.PageCache
}

// NewPages creates a new Pages handler group. pageCache may be nil when
// Valkey is not configured; publishing then skips cache invalidation.
func NewPages(pageStore *store.LandingPageStore, pageCache *cache.PageCache) *Pages {
	return &Pages{
		pageStore: pageStore,
		pageCache: pageCache,
	}
}

// pageRequest is the save/update payload: a title plus the full draft.
type pageRequest struct {
	Title      string        `json:"title"`
	Draft      builder.Draft `json:"draft"`
	ProposalID *uuid.UUID    `json:"proposal_id,omitempty"`
}

// resolveDraft validates the draft's template and the user's plan, then
// returns the template. Writes the error response itself on failure.
func resolveDraft(w http.ResponseWriter, r *http.Request, d *builder.Draft) (*catalog.Template, bool) {
	t, ok := catalog.TemplateByID(d.TemplateID)
	if !ok {
		respondError(w, http.StatusBadRequest, "Unknown template.")
		return nil, false
	}

	sess := middleware.SessionFromCtx(r.Context())
	if t.IsPremium && !sess.IsPro() {
		respondError(w, http.StatusForbidden, "This template requires the pro plan.")
		return nil, false
	}

	return t, true
}

// Preview generates HTML for a draft without persisting anything. The
// editor calls this on every change to refresh its iframe.
func (p *Pages) Preview(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, ok := resolveDraft(w, r, &req.Draft)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"html": builder.Generate(t, req.Draft),
	})
}

// Create generates the page HTML from the draft and saves it.
func (p *Pages) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req pageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validatePageTitle(req.Title); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	seo := req.Draft.Customizations.SEO
	if msg := validateSEO(seo.Title, seo.Description, seo.Keywords); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	t, ok := resolveDraft(w, r, &req.Draft)
	if !ok {
		return
	}

	html := builder.Generate(t, req.Draft)

	page, err := p.pageStore.Create(sess.UserID, req.Title, html, t.ID, req.ProposalID)
	if err != nil {
		slog.Error("create page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusCreated, page)
}

// List returns the user's pages, newest first, without HTML bodies.
func (p *Pages) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	pages, err := p.pageStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list pages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

// findOwnedPage loads the page and enforces ownership. Writes the error
// response itself on failure.
func (p *Pages) findOwnedPage(w http.ResponseWriter, r *http.Request) *models.LandingPage {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid page ID.")
		return nil
	}

	page, err := p.pageStore.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return nil
	}
	if page == nil || page.UserID != sess.UserID {
		respondError(w, http.StatusNotFound, "Page not found.")
		return nil
	}
	return page
}

// Get returns one page including its stored HTML.
func (p *Pages) Get(w http.ResponseWriter, r *http.Request) {
	page := p.findOwnedPage(w, r)
	if page == nil {
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"page": page,
		"html": page.PageHTML,
	})
}

// Update regenerates the HTML from the draft and replaces the stored page.
// The published copy changes immediately, so the cache entry is dropped.
func (p *Pages) Update(w http.ResponseWriter, r *http.Request) {
	page := p.findOwnedPage(w, r)
	if page == nil {
		return
	}

	var req pageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validatePageTitle(req.Title); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	t, ok := resolveDraft(w, r, &req.Draft)
	if !ok {
		return
	}

	html := builder.Generate(t, req.Draft)

	updated, err := p.pageStore.Update(page.ID, req.Title, html, t.ID)
	if err != nil {
		slog.Error("update page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if p.pageCache != nil && updated.Slug != nil {
		p.pageCache.InvalidatePage(r.Context(), *updated.Slug)
	}

	respondJSON(w, http.StatusOK, updated)
}

// Publish makes the page publicly reachable under /p/{slug}. First publish
// mints a slug from the title; later publishes keep the existing URL.
func (p *Pages) Publish(w http.ResponseWriter, r *http.Request) {
	page := p.findOwnedPage(w, r)
	if page == nil {
		return
	}

	pageSlug := ""
	if page.Slug != nil {
		pageSlug = *page.Slug
	} else {
		pageSlug = slug.GenerateUnique(page.Title)
	}

	published, err := p.pageStore.Publish(page.ID, pageSlug)
	if err != nil {
		slog.Error("publish page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if p.pageCache != nil {
		p.pageCache.InvalidatePage(r.Context(), pageSlug)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"page": published,
		"url":  "/p/" + pageSlug,
	})
}

// Unpublish takes the page offline. The slug survives so re-publishing
// restores the same URL.
func (p *Pages) Unpublish(w http.ResponseWriter, r *http.Request) {
	page := p.findOwnedPage(w, r)
	if page == nil {
		return
	}

	if err := p.pageStore.Unpublish(page.ID); err != nil {
		slog.Error("unpublish page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if p.pageCache != nil && page.Slug != nil {
		p.pageCache.InvalidatePage(r.Context(), *page.Slug)
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Download serves the stored HTML as a file attachment.
func (p *Pages) Download(w http.ResponseWriter, r *http.Request) {
	page := p.findOwnedPage(w, r)
	if page == nil {
		return
	}

	filename := slug.Generate(page.Title)
	if filename == "" {
		filename = "landing-page"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.html"`)
	w.Write([]byte(page.PageHTML))
}

// Delete removes the page and drops its cache entry.
func (p *Pages) Delete(w http.ResponseWriter, r *http.Request) {
	page := p.findOwnedPage(w, r)
	if page == nil {
		return
	}

	if err := p.pageStore.Delete(page.ID); err != nil {
		slog.Error("delete page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if p.pageCache != nil && page.Slug != nil {
		p.pageCache.InvalidatePage(r.Context(), *page.Slug)
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}
