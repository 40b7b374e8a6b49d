// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"boostkit/internal/catalog"
)

// Catalog serves the compiled-in template catalog and font options.
type Catalog struct{}

// NewCatalog creates a new Catalog handler group.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// ListTemplates returns the catalog, optionally filtered by ?category=.
// Unknown categories yield an empty list, not an error.
func (c *Catalog) ListTemplates(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, map[string]any{
		"templates": catalog.Templates(category),
	})
}

// GetTemplate returns a single template by ID.
func (c *Catalog) GetTemplate(w http.ResponseWriter, r *http.Request) {
	t, ok := catalog.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Template not found.")
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// ListFonts returns the selectable font options.
func (c *Catalog) ListFonts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"fonts": catalog.Fonts(),
	})
}
