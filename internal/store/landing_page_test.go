// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"boostkit/internal/models"
)

// testUser creates a throwaway user for page/proposal/image tests.
func testUser(t *testing.T, db *sql.DB, email string) uuid.UUID {
	t.Helper()
	u, err := NewUserStore(db).Create(email, "secret123", "Fixture", models.PlanPro)
	if err != nil {
		t.Fatalf("create fixture user: %v", err)
	}
	t.Cleanup(func() { cleanUsers(t, db, email) })
	return u.ID
}

func TestLandingPageLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewLandingPageStore(db)
	userID := testUser(t, db, "store-test-pages@example.com")

	// Create.
	p, err := s.Create(userID, "Summer Sale", "<!DOCTYPE html><html></html>", "startup-modern", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.IsPublished {
		t.Error("new page should not be published")
	}
	if p.Slug != nil {
		t.Error("new page should have no slug")
	}

	// Find with HTML.
	found, err := s.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.PageHTML != "<!DOCTYPE html><html></html>" {
		t.Errorf("HTML not stored verbatim: %q", found.PageHTML)
	}

	// Update.
	updated, err := s.Update(p.ID, "Summer Sale v2", "<!DOCTYPE html><html><body></body></html>", "startup-modern")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Summer Sale v2" {
		t.Errorf("title: got %q", updated.Title)
	}

	// Publish.
	published, err := s.Publish(p.ID, "summer-sale-abc123")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !published.IsPublished || published.Slug == nil || *published.Slug != "summer-sale-abc123" {
		t.Errorf("publish state: %+v", published)
	}

	// Public lookup by slug.
	bySlug, err := s.FindBySlug("summer-sale-abc123")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != p.ID {
		t.Fatalf("FindBySlug returned %+v", bySlug)
	}

	// Unpublish hides the page from public lookup but keeps the slug.
	if err := s.Unpublish(p.ID); err != nil {
		t.Fatalf("Unpublish: %v", err)
	}
	bySlug, err = s.FindBySlug("summer-sale-abc123")
	if err != nil {
		t.Fatalf("FindBySlug after unpublish: %v", err)
	}
	if bySlug != nil {
		t.Error("unpublished page should not be found by slug")
	}
	found, _ = s.FindByID(p.ID)
	if found.Slug == nil {
		t.Error("slug should survive unpublish")
	}

	// Delete.
	if err := s.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, _ = s.FindByID(p.ID)
	if found != nil {
		t.Error("page should be gone after delete")
	}
}

func TestLandingPageListByUser(t *testing.T) {
	db := testDB(t)
	s := NewLandingPageStore(db)
	userID := testUser(t, db, "store-test-page-list@example.com")

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := s.Create(userID, title, "<html></html>", "agency-creative", nil); err != nil {
			t.Fatalf("Create %q: %v", title, err)
		}
	}

	pages, err := s.ListByUser(userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	// Newest first.
	if pages[0].Title != "Third" {
		t.Errorf("expected newest first, got %q", pages[0].Title)
	}
	// Listings omit the HTML body.
	if pages[0].PageHTML != "" {
		t.Error("listing should not load page HTML")
	}

	count, err := s.CountByUser(userID)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if count != 3 {
		t.Errorf("count: got %d, want 3", count)
	}
}

func TestLandingPageViewCount(t *testing.T) {
	db := testDB(t)
	s := NewLandingPageStore(db)
	userID := testUser(t, db, "store-test-views@example.com")

	p, err := s.Create(userID, "Counted", "<html></html>", "startup-modern", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.IncrementViewCount(p.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}

	found, _ := s.FindByID(p.ID)
	if found.ViewCount != 3 {
		t.Errorf("view count: got %d, want 3", found.ViewCount)
	}
}
