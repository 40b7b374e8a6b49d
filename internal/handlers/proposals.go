// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"boostkit/internal/markdown"
	"boostkit/internal/middleware"
	"boostkit/internal/models"
	"boostkit/internal/proposal"
	"boostkit/internal/slug"
	"boostkit/internal/store"
)

// Proposals groups handlers for sales proposal generation and persistence.
// The proposal text is produced by a deterministic template filler.
type Proposals struct {
	proposalStore *store.SalesProposalStore
}

// NewProposals creates a new Proposals handler group.
func NewProposals(proposalStore *store.SalesProposalStore) *Proposals {
	return &Proposals{proposalStore: proposalStore}
}

type proposalRequest struct {
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	OriginalPrice      float64 `json:"original_price"`
	DiscountPrice      float64 `json:"discount_price"`
	UrgencyHours       int     `json:"urgency_hours"`
	WhatsAppNumber     string  `json:"whatsapp_number"`
}

func (req *proposalRequest) input() proposal.Input {
	return proposal.Input{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		OriginalPrice:      req.OriginalPrice,
		DiscountPrice:      req.DiscountPrice,
		UrgencyHours:       req.UrgencyHours,
		WhatsAppNumber:     req.WhatsAppNumber,
	}
}

// Preview generates proposal text without persisting anything.
func (p *Proposals) Preview(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateProposal(req.ProductName, req.OriginalPrice, req.DiscountPrice, req.UrgencyHours, req.WhatsAppNumber); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"proposal_text": proposal.Generate(req.input()),
	})
}

// Create generates the proposal text and saves the offer.
func (p *Proposals) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req proposalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateProposal(req.ProductName, req.OriginalPrice, req.DiscountPrice, req.UrgencyHours, req.WhatsAppNumber); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	saved, err := p.proposalStore.Create(sess.UserID, &models.SalesProposal{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		OriginalPrice:      req.OriginalPrice,
		DiscountPrice:      req.DiscountPrice,
		UrgencyHours:       req.UrgencyHours,
		WhatsAppNumber:     req.WhatsAppNumber,
		ProposalText:       proposal.Generate(req.input()),
	})
	if err != nil {
		slog.Error("create proposal failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusCreated, saved)
}

// List returns the user's proposals, newest first.
func (p *Proposals) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	proposals, err := p.proposalStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list proposals failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"proposals": proposals})
}

// findOwnedProposal loads the proposal and enforces ownership. Writes the
// error response itself on failure.
func (p *Proposals) findOwnedProposal(w http.ResponseWriter, r *http.Request) *models.SalesProposal {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid proposal ID.")
		return nil
	}

	prop, err := p.proposalStore.FindByID(id)
	if err != nil {
		slog.Error("find proposal failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return nil
	}
	if prop == nil || prop.UserID != sess.UserID {
		respondError(w, http.StatusNotFound, "Proposal not found.")
		return nil
	}
	return prop
}

// Get returns one proposal.
func (p *Proposals) Get(w http.ResponseWriter, r *http.Request) {
	prop := p.findOwnedProposal(w, r)
	if prop == nil {
		return
	}
	respondJSON(w, http.StatusOK, prop)
}

// GetHTML renders the proposal text as HTML for email export or embedding.
func (p *Proposals) GetHTML(w http.ResponseWriter, r *http.Request) {
	prop := p.findOwnedProposal(w, r)
	if prop == nil {
		return
	}

	html, err := markdown.ToHTML(prop.ProposalText)
	if err != nil {
		slog.Error("render proposal html failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"html": html})
}

// Download serves the proposal text as a plain-text attachment, ready to
// paste into WhatsApp or email.
func (p *Proposals) Download(w http.ResponseWriter, r *http.Request) {
	prop := p.findOwnedProposal(w, r)
	if prop == nil {
		return
	}

	filename := slug.Generate(prop.ProductName)
	if filename == "" {
		filename = "proposal"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.txt"`)
	w.Write([]byte(prop.ProposalText))
}

// Update replaces the offer fields and regenerates the proposal text.
func (p *Proposals) Update(w http.ResponseWriter, r *http.Request) {
	prop := p.findOwnedProposal(w, r)
	if prop == nil {
		return
	}

	var req proposalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateProposal(req.ProductName, req.OriginalPrice, req.DiscountPrice, req.UrgencyHours, req.WhatsAppNumber); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := p.proposalStore.Update(prop.ID, &models.SalesProposal{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		OriginalPrice:      req.OriginalPrice,
		DiscountPrice:      req.DiscountPrice,
		UrgencyHours:       req.UrgencyHours,
		WhatsAppNumber:     req.WhatsAppNumber,
		ProposalText:       proposal.Generate(req.input()),
	})
	if err != nil {
		slog.Error("update proposal failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// Delete removes the proposal. Linked landing pages keep working; the
// database clears the reference.
func (p *Proposals) Delete(w http.ResponseWriter, r *http.Request) {
	prop := p.findOwnedProposal(w, r)
	if prop == nil {
		return
	}

	if err := p.proposalStore.Delete(prop.ID); err != nil {
		slog.Error("delete proposal failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}
