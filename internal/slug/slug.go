// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for published page URLs.
package slug

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Summer Sale! 2026" → "summer-sale-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// GenerateUnique creates a slug from the given string with a short random
// suffix appended. Published page URLs use this form so two pages with the
// same title never collide.
func GenerateUnique(s string) string {
	suffix := make([]byte, 3)
	rand.Read(suffix)
	base := Generate(s)
	if base == "" {
		base = "page"
	}
	return base + "-" + hex.EncodeToString(suffix)
}
