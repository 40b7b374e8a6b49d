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

// DealImageStore handles deal image metadata persistence. The image bytes
// themselves live in object storage; rows here carry the S3 keys.
type DealImageStore struct {
	db *sql.DB
}

// NewDealImageStore creates a new DealImageStore.
func NewDealImageStore(db *sql.DB) *DealImageStore {
	return &DealImageStore{db: db}
}

const dealImageColumns = `id, user_id, title, s3_key, thumb_s3_key, overlay_text, template_settings, created_at, updated_at`

func scanDealImage(row interface{ Scan(...any) error }, d *models.DealImage) error {
	return row.Scan(
		&d.ID, &d.UserID, &d.Title, &d.S3Key, &d.ThumbS3Key,
		&d.OverlayText, &d.TemplateSettings, &d.CreatedAt, &d.UpdatedAt,
	)
}

// Create inserts a new deal image row.
func (s *DealImageStore) Create(userID uuid.UUID, d *models.DealImage) (*models.DealImage, error) {
	out := &models.DealImage{}
	err := scanDealImage(s.db.QueryRow(`
		INSERT INTO deal_images (user_id, title, s3_key, thumb_s3_key, overlay_text, template_settings)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+dealImageColumns,
		userID, d.Title, d.S3Key, d.ThumbS3Key, d.OverlayText, d.TemplateSettings,
	), out)
	if err != nil {
		return nil, fmt.Errorf("create deal image: %w", err)
	}
	return out, nil
}

// FindByID retrieves a deal image by ID. Returns nil if not found.
func (s *DealImageStore) FindByID(id uuid.UUID) (*models.DealImage, error) {
	d := &models.DealImage{}
	err := scanDealImage(s.db.QueryRow(`
		SELECT `+dealImageColumns+` FROM deal_images WHERE id = $1
	`, id), d)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find deal image: %w", err)
	}
	return d, nil
}

// ListByUser returns all deal images owned by a user, newest first.
func (s *DealImageStore) ListByUser(userID uuid.UUID) ([]models.DealImage, error) {
	rows, err := s.db.Query(`
		SELECT `+dealImageColumns+` FROM deal_images
		WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list deal images: %w", err)
	}
	defer rows.Close()

	var images []models.DealImage
	for rows.Next() {
		var d models.DealImage
		if err := scanDealImage(rows, &d); err != nil {
			return nil, fmt.Errorf("scan deal image: %w", err)
		}
		images = append(images, d)
	}
	return images, rows.Err()
}

// UpdateSettings replaces the title, overlay text, and editor settings of
// an existing deal image.
func (s *DealImageStore) UpdateSettings(id uuid.UUID, title string, overlayText *string, settings []byte) (*models.DealImage, error) {
	d := &models.DealImage{}
	err := scanDealImage(s.db.QueryRow(`
		UPDATE deal_images
		SET title = $1, overlay_text = $2, template_settings = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+dealImageColumns,
		title, overlayText, settings, id,
	), d)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update deal image: %w", err)
	}
	return d, nil
}

// Delete removes a deal image row. The caller deletes the S3 objects.
func (s *DealImageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM deal_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deal image: %w", err)
	}
	return nil
}
