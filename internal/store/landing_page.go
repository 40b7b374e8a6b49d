// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"boostkit/internal/models"
)

// LandingPageStore handles landing page persistence.
type LandingPageStore struct {
	db *sql.DB
}

// NewLandingPageStore creates a new LandingPageStore.
func NewLandingPageStore(db *sql.DB) *LandingPageStore {
	return &LandingPageStore{db: db}
}

const landingPageColumns = `id, user_id, page_title, page_html, page_url, template_id, proposal_id, is_published, view_count, created_at, updated_at`

func scanLandingPage(row interface{ Scan(...any) error }, p *models.LandingPage) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.PageHTML, &p.Slug, &p.TemplateID,
		&p.ProposalID, &p.IsPublished, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create inserts a new landing page and returns the stored row.
func (s *LandingPageStore) Create(userID uuid.UUID, title, html, templateID string, proposalID *uuid.UUID) (*models.LandingPage, error) {
	p := &models.LandingPage{}
	err := scanLandingPage(s.db.QueryRow(`
		INSERT INTO landing_pages (user_id, page_title, page_html, template_id, proposal_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+landingPageColumns,
		userID, title, html, templateID, proposalID,
	), p)
	if err != nil {
		return nil, fmt.Errorf("create landing page: %w", err)
	}
	return p, nil
}

// FindByID retrieves a landing page by ID. Returns nil if not found.
func (s *LandingPageStore) FindByID(id uuid.UUID) (*models.LandingPage, error) {
	p := &models.LandingPage{}
	err := scanLandingPage(s.db.QueryRow(`
		SELECT `+landingPageColumns+` FROM landing_pages WHERE id = $1
	`, id), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find landing page: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a published landing page by its public slug.
// Returns nil if not found or not published.
func (s *LandingPageStore) FindBySlug(slug string) (*models.LandingPage, error) {
	p := &models.LandingPage{}
	err := scanLandingPage(s.db.QueryRow(`
		SELECT `+landingPageColumns+` FROM landing_pages
		WHERE page_url = $1 AND is_published = TRUE
	`, slug), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find landing page by slug: %w", err)
	}
	return p, nil
}

// ListByUser returns all landing pages owned by a user, newest first.
// PageHTML is not loaded for listings.
func (s *LandingPageStore) ListByUser(userID uuid.UUID) ([]models.LandingPage, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, page_title, page_url, template_id, proposal_id, is_published, view_count, created_at, updated_at
		FROM landing_pages WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list landing pages: %w", err)
	}
	defer rows.Close()

	var pages []models.LandingPage
	for rows.Next() {
		var p models.LandingPage
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Slug, &p.TemplateID,
			&p.ProposalID, &p.IsPublished, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan landing page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Update replaces the title and HTML of an existing page. Republishing
// keeps the slug; the cache is invalidated by the caller.
func (s *LandingPageStore) Update(id uuid.UUID, title, html, templateID string) (*models.LandingPage, error) {
	p := &models.LandingPage{}
	err := scanLandingPage(s.db.QueryRow(`
		UPDATE landing_pages
		SET page_title = $1, page_html = $2, template_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+landingPageColumns,
		title, html, templateID, id,
	), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update landing page: %w", err)
	}
	return p, nil
}

// Publish marks the page as published under the given slug.
func (s *LandingPageStore) Publish(id uuid.UUID, slug string) (*models.LandingPage, error) {
	p := &models.LandingPage{}
	err := scanLandingPage(s.db.QueryRow(`
		UPDATE landing_pages
		SET is_published = TRUE, page_url = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+landingPageColumns,
		slug, id,
	), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("publish landing page: %w", err)
	}
	return p, nil
}

// Unpublish takes the page offline. The slug is retained so re-publishing
// restores the same URL.
func (s *LandingPageStore) Unpublish(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE landing_pages SET is_published = FALSE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("unpublish landing page: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the page's view counter. Called from the public
// serving path; failures are logged by the caller, never surfaced to visitors.
func (s *LandingPageStore) IncrementViewCount(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE landing_pages SET view_count = view_count + 1 WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// Delete removes a landing page by ID.
func (s *LandingPageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM landing_pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete landing page: %w", err)
	}
	return nil
}

// CountByUser returns how many pages a user owns. Used for the dashboard
// and the free-plan page limit.
func (s *LandingPageStore) CountByUser(userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM landing_pages WHERE user_id = $1
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count landing pages: %w", err)
	}
	return count, nil
}
