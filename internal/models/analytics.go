// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies analytics events recorded against landing pages.
type EventType string

const (
	EventPageView   EventType = "page_view"
	EventCTAClick   EventType = "cta_click"
	EventConversion EventType = "conversion"
)

// AnalyticsEvent is one recorded visitor interaction with a published page.
type AnalyticsEvent struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	LandingPageID *uuid.UUID `json:"landing_page_id,omitempty"`
	EventType     EventType  `json:"event_type"`
	VisitorIP     *string    `json:"visitor_ip,omitempty"`
	UserAgent     *string    `json:"user_agent,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}
