package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for editor inputs.
const (
	maxTitleLen       = 300
	maxSectionTextLen = 10_000
	maxSEOTitleLen    = 300
	maxSEODescLen     = 500
	maxSEOKeywords    = 30
	maxProductNameLen = 200
	maxDescriptionLen = 5_000
	maxWhatsAppLen    = 30
	maxUrgencyHours   = 24 * 30
	maxUploadBytes    = 10 << 20 // 10 MB per deal image
)

// validatePageTitle checks the page title and returns the first error found.
func validatePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	return ""
}

// validateSEO checks the optional SEO metadata fields.
func validateSEO(title, desc string, keywords []string) string {
	if utf8.RuneCountInString(title) > maxSEOTitleLen {
		return "SEO title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(desc) > maxSEODescLen {
		return "SEO description is too long (max 500 characters)."
	}
	if len(keywords) > maxSEOKeywords {
		return "Too many SEO keywords (max 30)."
	}
	return ""
}

// validateProposal checks the proposal offer fields.
func validateProposal(productName string, originalPrice, discountPrice float64, urgencyHours int, whatsApp string) string {
	if strings.TrimSpace(productName) == "" {
		return "Product name is required."
	}
	if utf8.RuneCountInString(productName) > maxProductNameLen {
		return "Product name is too long (max 200 characters)."
	}
	if originalPrice < 0 || discountPrice < 0 {
		return "Prices cannot be negative."
	}
	if urgencyHours < 0 || urgencyHours > maxUrgencyHours {
		return "Urgency must be between 0 and 720 hours."
	}
	if utf8.RuneCountInString(whatsApp) > maxWhatsAppLen {
		return "WhatsApp number is too long."
	}
	return ""
}
