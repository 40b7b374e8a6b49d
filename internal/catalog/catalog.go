// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog provides the static landing-page template catalog and
// font options. The catalog is compiled-in configuration data: created
// once, never mutated, safe for concurrent reads.
package catalog

// Category groups templates by their target audience.
type Category string

const (
	CategoryStartup   Category = "startup"
	CategoryEcommerce Category = "ecommerce"
	CategoryAgency    Category = "agency"
	CategoryCorporate Category = "corporate"
	CategoryCreative  Category = "creative"
)

// SectionType identifies the role of a template section on the page.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionPricing      SectionType = "pricing"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionFooter       SectionType = "footer"
)

// ColorScheme is a named set of five colors applied across a generated page.
type ColorScheme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Section is a typed, named region of a landing page template. Layout holds
// schema-free per-type presentation defaults (columns, style, etc.) that the
// editor UI surfaces but the generator does not interpret.
type Section struct {
	ID       string         `json:"id"`
	Type     SectionType    `json:"type"`
	Name     string         `json:"name"`
	Required bool           `json:"required"`
	Layout   map[string]any `json:"layout,omitempty"`
}

// Template is a static landing-page layout definition. Every template has
// at least one color scheme (the first is the default) and at least one
// required section.
type Template struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     Category      `json:"category"`
	Description  string        `json:"description"`
	PreviewURL   string        `json:"preview_url"`
	IsPremium    bool          `json:"is_premium"`
	ColorSchemes []ColorScheme `json:"color_schemes"`
	Sections     []Section     `json:"sections"`
}

// FontOption is a selectable font with its CSS family stack.
type FontOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Family string `json:"family"`
}

// HasSection reports whether the template contains a section of the given type.
func (t *Template) HasSection(typ SectionType) bool {
	for _, s := range t.Sections {
		if s.Type == typ {
			return true
		}
	}
	return false
}

// Templates returns the catalog in insertion order. When category is
// non-empty, only templates of that category are returned. The catalog
// itself is never mutated; callers receive a fresh slice.
func Templates(category Category) []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TemplateByID looks up a template by its exact ID.
func TemplateByID(id string) (*Template, bool) {
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], true
		}
	}
	return nil, false
}

// Fonts returns the selectable font options in catalog order.
func Fonts() []FontOption {
	out := make([]FontOption, len(fonts))
	copy(out, fonts)
	return out
}

// ResolveScheme returns the template's color scheme with the given ID,
// falling back to the first scheme when the ID does not resolve. This is
// the single fallback policy for all catalog lookups: unknown IDs silently
// select the default entry rather than failing.
func ResolveScheme(t *Template, id string) ColorScheme {
	for _, s := range t.ColorSchemes {
		if s.ID == id {
			return s
		}
	}
	return t.ColorSchemes[0]
}

// ResolveFont returns the font option with the given ID, falling back to
// the first catalog entry when the ID does not resolve.
func ResolveFont(id string) FontOption {
	for _, f := range fonts {
		if f.ID == id {
			return f
		}
	}
	return fonts[0]
}
