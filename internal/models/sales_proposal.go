// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SalesProposal is a saved promotional offer together with its generated
// proposal text.
type SalesProposal struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountPrice      float64   `json:"discount_price"`
	UrgencyHours       int       `json:"urgency_hours"`
	WhatsAppNumber     string    `json:"whatsapp_number"`
	ProposalText       string    `json:"proposal_text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
