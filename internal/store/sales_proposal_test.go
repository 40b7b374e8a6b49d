// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"boostkit/internal/models"
)

func TestSalesProposalLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewSalesProposalStore(db)
	userID := testUser(t, db, "store-test-proposals@example.com")

	in := &models.SalesProposal{
		ProductName:        "Wireless Earbuds",
		ProductDescription: "Noise cancelling",
		OriginalPrice:      99.90,
		DiscountPrice:      59.90,
		UrgencyHours:       48,
		WhatsAppNumber:     "+40712345678",
		ProposalText:       "🔥 EXCLUSIVE OFFER",
	}

	p, err := s.Create(userID, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ProductName != "Wireless Earbuds" || p.UrgencyHours != 48 {
		t.Errorf("stored proposal mismatch: %+v", p)
	}

	found, err := s.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.ProposalText != "🔥 EXCLUSIVE OFFER" {
		t.Fatalf("FindByID returned %+v", found)
	}

	// Update with new prices and regenerated text.
	in.DiscountPrice = 49.90
	in.ProposalText = "🔥 EXCLUSIVE OFFER v2"
	updated, err := s.Update(p.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DiscountPrice != 49.90 || updated.ProposalText != "🔥 EXCLUSIVE OFFER v2" {
		t.Errorf("update mismatch: %+v", updated)
	}

	list, err := s.ListByUser(userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d proposals, want 1", len(list))
	}

	if err := s.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, _ = s.FindByID(p.ID)
	if found != nil {
		t.Error("proposal should be gone after delete")
	}
}

func TestProposalDeleteKeepsLinkedPage(t *testing.T) {
	db := testDB(t)
	proposals := NewSalesProposalStore(db)
	pages := NewLandingPageStore(db)
	userID := testUser(t, db, "store-test-proposal-link@example.com")

	p, err := proposals.Create(userID, &models.SalesProposal{ProductName: "Linked"})
	if err != nil {
		t.Fatalf("Create proposal: %v", err)
	}

	page, err := pages.Create(userID, "Linked Page", "<html></html>", "startup-modern", &p.ID)
	if err != nil {
		t.Fatalf("Create page: %v", err)
	}
	if page.ProposalID == nil || *page.ProposalID != p.ID {
		t.Fatalf("page should reference proposal: %+v", page)
	}

	// Deleting the proposal nulls the reference, the page survives.
	if err := proposals.Delete(p.ID); err != nil {
		t.Fatalf("Delete proposal: %v", err)
	}
	found, err := pages.FindByID(page.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("page should survive proposal deletion")
	}
	if found.ProposalID != nil {
		t.Error("proposal reference should be cleared")
	}
}
