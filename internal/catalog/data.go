// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

// templates is the compiled-in template catalog. Order matters: listing
// preserves insertion order and the first color scheme of each template
// is its default.
var templates = []Template{
	{
		ID:          "startup-modern",
		Name:        "Modern Startup",
		Category:    CategoryStartup,
		Description: "Clean, modern design perfect for SaaS and tech startups",
		PreviewURL:  "/api/placeholder/400/300",
		IsPremium:   false,
		ColorSchemes: []ColorScheme{
			{
				ID:         "blue-gradient",
				Name:       "Blue Gradient",
				Primary:    "#667eea",
				Secondary:  "#764ba2",
				Accent:     "#f093fb",
				Background: "#ffffff",
				Text:       "#2d3748",
			},
			{
				ID:         "purple-modern",
				Name:       "Purple Modern",
				Primary:    "#8b5cf6",
				Secondary:  "#a855f7",
				Accent:     "#ec4899",
				Background: "#ffffff",
				Text:       "#1f2937",
			},
		},
		Sections: []Section{
			{
				ID: "hero", Type: SectionHero, Name: "Hero Section", Required: true,
				Layout: map[string]any{"layout": "centered", "hasBackground": true, "hasAnimation": true},
			},
			{
				ID: "features", Type: SectionFeatures, Name: "Features Grid", Required: true,
				Layout: map[string]any{"layout": "grid", "columns": 3, "hasIcons": true},
			},
			{
				ID: "pricing", Type: SectionPricing, Name: "Pricing Table", Required: false,
				Layout: map[string]any{"layout": "cards", "tiers": 3, "hasPopular": true},
			},
			{
				ID: "testimonials", Type: SectionTestimonials, Name: "Customer Testimonials", Required: false,
				Layout: map[string]any{"layout": "carousel", "hasPhotos": true, "hasRatings": true},
			},
			{
				ID: "cta", Type: SectionCTA, Name: "Call to Action", Required: true,
				Layout: map[string]any{"layout": "centered", "style": "gradient"},
			},
		},
	},
	{
		ID:          "ecommerce-pro",
		Name:        "E-commerce Pro",
		Category:    CategoryEcommerce,
		Description: "Product-focused design with conversion optimization",
		PreviewURL:  "/api/placeholder/400/300",
		IsPremium:   true,
		ColorSchemes: []ColorScheme{
			{
				ID:         "orange-warm",
				Name:       "Orange Warm",
				Primary:    "#f97316",
				Secondary:  "#ea580c",
				Accent:     "#fbbf24",
				Background: "#fefefe",
				Text:       "#1c1917",
			},
		},
		Sections: []Section{
			{
				ID: "hero", Type: SectionHero, Name: "Product Hero", Required: true,
				Layout: map[string]any{"layout": "split", "hasProductImage": true, "hasVideo": true},
			},
			{
				ID: "features", Type: SectionFeatures, Name: "Product Benefits", Required: true,
				Layout: map[string]any{"layout": "alternating", "hasImages": true},
			},
			{
				ID: "pricing", Type: SectionPricing, Name: "Pricing Plans", Required: true,
				Layout: map[string]any{"layout": "comparison", "hasDiscount": true},
			},
		},
	},
	{
		ID:          "agency-creative",
		Name:        "Creative Agency",
		Category:    CategoryAgency,
		Description: "Bold, creative design for agencies and portfolios",
		PreviewURL:  "/api/placeholder/400/300",
		IsPremium:   false,
		ColorSchemes: []ColorScheme{
			{
				ID:         "dark-modern",
				Name:       "Dark Modern",
				Primary:    "#06b6d4",
				Secondary:  "#0891b2",
				Accent:     "#f59e0b",
				Background: "#0f172a",
				Text:       "#f8fafc",
			},
		},
		Sections: []Section{
			{
				ID: "hero", Type: SectionHero, Name: "Agency Hero", Required: true,
				Layout: map[string]any{"layout": "fullscreen", "hasVideo": true, "hasParallax": true},
			},
			{
				ID: "features", Type: SectionFeatures, Name: "Services", Required: true,
				Layout: map[string]any{"layout": "masonry", "hasHover": true},
			},
		},
	},
}

// fonts lists the selectable Google Fonts. The first entry is the default.
var fonts = []FontOption{
	{ID: "inter", Name: "Inter", Family: "Inter, sans-serif"},
	{ID: "poppins", Name: "Poppins", Family: "Poppins, sans-serif"},
	{ID: "space-grotesk", Name: "Space Grotesk", Family: "Space Grotesk, sans-serif"},
	{ID: "playfair", Name: "Playfair Display", Family: "Playfair Display, serif"},
}
