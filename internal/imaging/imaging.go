// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates thumbnails for uploaded deal images. Thumbnails
// are JPEG-encoded at a fixed gallery width; images narrower than the target
// are re-encoded without upscaling.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// ThumbWidth is the gallery grid thumbnail width in pixels.
	ThumbWidth = 400
	// thumbQuality is the JPEG quality for thumbnails.
	thumbQuality = 80
)

// Thumbnail holds one generated thumbnail ready for upload.
type Thumbnail struct {
	Width       int
	Height      int
	Data        []byte
	ContentType string // always "image/jpeg"
}

// Generate decodes the source image and produces a thumbnail scaled to
// ThumbWidth. Source images narrower than ThumbWidth keep their dimensions.
func Generate(original []byte) (*Thumbnail, error) {
	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imaging: empty image %dx%d", width, height)
	}

	targetWidth := ThumbWidth
	if width < targetWidth {
		targetWidth = width
	}
	targetHeight := height * targetWidth / width
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}

	return &Thumbnail{
		Width:       targetWidth,
		Height:      targetHeight,
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
	}, nil
}
