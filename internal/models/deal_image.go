// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DealImage is a promotional image produced in the canvas editor. The
// original and a server-generated thumbnail live in object storage;
// TemplateSettings stores the editor's overlay state (font, color, shadow,
// position) as an opaque JSON document so the client can re-open the image
// for editing.
type DealImage struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Title            string          `json:"title"`
	S3Key            string          `json:"s3_key"`
	ThumbS3Key       *string         `json:"thumb_s3_key,omitempty"`
	OverlayText      *string         `json:"overlay_text,omitempty"`
	TemplateSettings json.RawMessage `json:"template_settings,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
