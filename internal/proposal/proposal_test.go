// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package proposal

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	in := Input{
		ProductName:        "Turbo Blender",
		ProductDescription: "Blends anything in seconds.",
		OriginalPrice:      99.90,
		DiscountPrice:      59.90,
		UrgencyHours:       24,
		WhatsAppNumber:     "+40 700 000 000",
	}

	out := Generate(in)

	for _, want := range []string{
		"Turbo Blender",
		"Blends anything in seconds.",
		"Regular Price: $99.9",
		"Your Price TODAY: $59.9",
		"You SAVE: $40.00",
		"expires in 24 hours!",
		"WhatsApp: +40 700 000 000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if Generate(in) != out {
		t.Error("generation must be deterministic")
	}
}

func TestSavingsClampsNegative(t *testing.T) {
	in := Input{OriginalPrice: 10, DiscountPrice: 25}
	if got := in.Savings(); got != 0 {
		t.Errorf("savings: got %v, want 0 for a mispriced offer", got)
	}

	out := Generate(in)
	if !strings.Contains(out, "You SAVE: $0.00") {
		t.Error("negative savings should render as $0.00")
	}
}

func TestGenerateWholePrices(t *testing.T) {
	out := Generate(Input{OriginalPrice: 100, DiscountPrice: 75, UrgencyHours: 48})
	if !strings.Contains(out, "Regular Price: $100\n") {
		t.Error("whole prices should render without decimals")
	}
	if !strings.Contains(out, "You SAVE: $25.00") {
		t.Error("savings always renders with two decimals")
	}
}
