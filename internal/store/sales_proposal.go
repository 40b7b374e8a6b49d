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

// SalesProposalStore handles sales proposal persistence.
type SalesProposalStore struct {
	db *sql.DB
}

// NewSalesProposalStore creates a new SalesProposalStore.
func NewSalesProposalStore(db *sql.DB) *SalesProposalStore {
	return &SalesProposalStore{db: db}
}

const proposalColumns = `id, user_id, product_name, product_description, original_price, discount_price, urgency_hours, whatsapp_number, proposal_text, created_at, updated_at`

func scanProposal(row interface{ Scan(...any) error }, p *models.SalesProposal) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.ProductName, &p.ProductDescription,
		&p.OriginalPrice, &p.DiscountPrice, &p.UrgencyHours,
		&p.WhatsAppNumber, &p.ProposalText, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Create inserts a new sales proposal with its generated text.
func (s *SalesProposalStore) Create(userID uuid.UUID, p *models.SalesProposal) (*models.SalesProposal, error) {
	out := &models.SalesProposal{}
	err := scanProposal(s.db.QueryRow(`
		INSERT INTO sales_proposals
			(user_id, product_name, product_description, original_price, discount_price, urgency_hours, whatsapp_number, proposal_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+proposalColumns,
		userID, p.ProductName, p.ProductDescription, p.OriginalPrice,
		p.DiscountPrice, p.UrgencyHours, p.WhatsAppNumber, p.ProposalText,
	), out)
	if err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}
	return out, nil
}

// FindByID retrieves a proposal by ID. Returns nil if not found.
func (s *SalesProposalStore) FindByID(id uuid.UUID) (*models.SalesProposal, error) {
	p := &models.SalesProposal{}
	err := scanProposal(s.db.QueryRow(`
		SELECT `+proposalColumns+` FROM sales_proposals WHERE id = $1
	`, id), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find proposal: %w", err)
	}
	return p, nil
}

// ListByUser returns all proposals owned by a user, newest first.
func (s *SalesProposalStore) ListByUser(userID uuid.UUID) ([]models.SalesProposal, error) {
	rows, err := s.db.Query(`
		SELECT `+proposalColumns+` FROM sales_proposals
		WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []models.SalesProposal
	for rows.Next() {
		var p models.SalesProposal
		if err := scanProposal(rows, &p); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

// Update replaces the offer fields and regenerated text of a proposal.
func (s *SalesProposalStore) Update(id uuid.UUID, p *models.SalesProposal) (*models.SalesProposal, error) {
	out := &models.SalesProposal{}
	err := scanProposal(s.db.QueryRow(`
		UPDATE sales_proposals
		SET product_name = $1, product_description = $2, original_price = $3,
		    discount_price = $4, urgency_hours = $5, whatsapp_number = $6,
		    proposal_text = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+proposalColumns,
		p.ProductName, p.ProductDescription, p.OriginalPrice, p.DiscountPrice,
		p.UrgencyHours, p.WhatsAppNumber, p.ProposalText, id,
	), out)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update proposal: %w", err)
	}
	return out, nil
}

// Delete removes a proposal by ID. Landing pages that referenced it keep
// working (proposal_id is set NULL by the foreign key).
func (s *SalesProposalStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM sales_proposals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	return nil
}
