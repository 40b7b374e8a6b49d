// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package proposal generates sales proposal text from structured offer
// input. The output is a fixed promotional template with the offer's
// numbers substituted in; generation is pure and deterministic.
package proposal

import (
	"fmt"
	"strconv"
	"strings"
)

// Input holds the offer details a proposal is generated from.
type Input struct {
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	OriginalPrice      float64 `json:"original_price"`
	DiscountPrice      float64 `json:"discount_price"`
	UrgencyHours       int     `json:"urgency_hours"`
	WhatsAppNumber     string  `json:"whatsapp_number"`
}

// Savings returns the difference between original and discount price.
// Negative differences clamp to zero so a mispriced offer never advertises
// negative savings.
func (in Input) Savings() float64 {
	s := in.OriginalPrice - in.DiscountPrice
	if s < 0 {
		return 0
	}
	return s
}

// price formats a price without trailing zeros ($29, $29.5, $29.99).
func price(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// Generate renders the proposal text for the given offer.
func Generate(in Input) string {
	var b strings.Builder

	b.WriteString("🔥 EXCLUSIVE OFFER - LIMITED TIME! 🔥\n\n")
	b.WriteString(in.ProductName + "\n\n")
	b.WriteString(in.ProductDescription + "\n\n")
	b.WriteString("💰 SPECIAL PRICING:\n")
	b.WriteString("❌ Regular Price: " + price(in.OriginalPrice) + "\n")
	b.WriteString("✅ Your Price TODAY: " + price(in.DiscountPrice) + "\n")
	b.WriteString(fmt.Sprintf("💡 You SAVE: $%.2f\n\n", in.Savings()))
	b.WriteString(fmt.Sprintf("⏰ This offer expires in %d hours!\n\n", in.UrgencyHours))
	b.WriteString("🎯 Why choose us?\n")
	b.WriteString("✓ Premium quality guaranteed\n")
	b.WriteString("✓ Fast delivery\n")
	b.WriteString("✓ 100% satisfaction guarantee\n")
	b.WriteString("✓ Exclusive customer support\n\n")
	b.WriteString("Don't miss out on this incredible deal!\n\n")
	b.WriteString("📱 Order NOW via WhatsApp: " + in.WhatsAppNumber + "\n\n")
	b.WriteString("*Limited quantities available. First come, first served!*")

	return b.String()
}
