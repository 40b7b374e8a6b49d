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

// AnalyticsStore records and aggregates visitor events for published pages.
type AnalyticsStore struct {
	db *sql.DB
}

// NewAnalyticsStore creates a new AnalyticsStore.
func NewAnalyticsStore(db *sql.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// Record inserts an analytics event. Called fire-and-forget from the public
// serving path.
func (s *AnalyticsStore) Record(userID uuid.UUID, pageID *uuid.UUID, event models.EventType, visitorIP, userAgent string) error {
	var ip, ua *string
	if visitorIP != "" {
		ip = &visitorIP
	}
	if userAgent != "" {
		ua = &userAgent
	}
	_, err := s.db.Exec(`
		INSERT INTO analytics (user_id, landing_page_id, event_type, visitor_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, pageID, event, ip, ua)
	if err != nil {
		return fmt.Errorf("record analytics event: %w", err)
	}
	return nil
}

// PageStats holds aggregate event counts for one landing page.
type PageStats struct {
	LandingPageID uuid.UUID `json:"landing_page_id"`
	PageViews     int       `json:"page_views"`
	CTAClicks     int       `json:"cta_clicks"`
	Conversions   int       `json:"conversions"`
}

// StatsByUser aggregates event counts per page for all of a user's pages.
func (s *AnalyticsStore) StatsByUser(userID uuid.UUID) ([]PageStats, error) {
	rows, err := s.db.Query(`
		SELECT landing_page_id,
		       COUNT(*) FILTER (WHERE event_type = 'page_view'),
		       COUNT(*) FILTER (WHERE event_type = 'cta_click'),
		       COUNT(*) FILTER (WHERE event_type = 'conversion')
		FROM analytics
		WHERE user_id = $1 AND landing_page_id IS NOT NULL
		GROUP BY landing_page_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics stats: %w", err)
	}
	defer rows.Close()

	var stats []PageStats
	for rows.Next() {
		var st PageStats
		if err := rows.Scan(&st.LandingPageID, &st.PageViews, &st.CTAClicks, &st.Conversions); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// TotalEvents returns the total event count for a user across all pages.
func (s *AnalyticsStore) TotalEvents(userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM analytics WHERE user_id = $1
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count analytics events: %w", err)
	}
	return count, nil
}
