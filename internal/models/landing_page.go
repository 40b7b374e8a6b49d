// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// LandingPage is a saved, generated landing page. PageHTML is the frozen
// document produced by the builder at save time; it is stored verbatim and
// never parsed back into a draft.
type LandingPage struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"page_title"`
	PageHTML    string     `json:"-"` // Large; fetched explicitly, not listed
	Slug        *string    `json:"page_url,omitempty"`
	TemplateID  string     `json:"template_id"`
	ProposalID  *uuid.UUID `json:"proposal_id,omitempty"`
	IsPublished bool       `json:"is_published"`
	ViewCount   int        `json:"view_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
