// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package builder holds the page draft model and the HTML/CSS generator
// that turns a catalog template plus a draft into a standalone document.
package builder

import "boostkit/internal/catalog"

// SectionContent is the per-section editable payload. Fields are grouped
// by the section type that reads them; unused fields stay empty. An empty
// field always falls back to the generator's default table, so the editor
// never has to send complete payloads.
type SectionContent struct {
	// Hero
	Headline    string `json:"headline,omitempty"`
	Subheadline string `json:"subheadline,omitempty"`
	CTAText     string `json:"ctaText,omitempty"`
	CTALink     string `json:"ctaLink,omitempty"`

	// Features and pricing share a section title.
	Title string `json:"title,omitempty"`

	// Features: blank-line separated entries; each entry is
	// icon\ntitle\ndescription lines.
	Features string `json:"features,omitempty"`

	// Pricing: JSON-encoded array of plans.
	Plans string `json:"plans,omitempty"`
}

// SectionPatch is a partial section update from the editor. A nil field is
// left alone; a set field overwrites, and setting a field to the empty
// string clears it so the generator's default applies again.
type SectionPatch struct {
	Headline    *string `json:"headline,omitempty"`
	Subheadline *string `json:"subheadline,omitempty"`
	CTAText     *string `json:"ctaText,omitempty"`
	CTALink     *string `json:"ctaLink,omitempty"`
	Title       *string `json:"title,omitempty"`
	Features    *string `json:"features,omitempty"`
	Plans       *string `json:"plans,omitempty"`
}

// apply overlays the set fields of p onto a copy of c.
func (c SectionContent) apply(p SectionPatch) SectionContent {
	if p.Headline != nil {
		c.Headline = *p.Headline
	}
	if p.Subheadline != nil {
		c.Subheadline = *p.Subheadline
	}
	if p.CTAText != nil {
		c.CTAText = *p.CTAText
	}
	if p.CTALink != nil {
		c.CTALink = *p.CTALink
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Features != nil {
		c.Features = *p.Features
	}
	if p.Plans != nil {
		c.Plans = *p.Plans
	}
	return c
}

// SEO holds the page metadata emitted into the document head.
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Customizations are the site-wide draft settings.
type Customizations struct {
	Font       string `json:"font"`
	Animations bool   `json:"animations"`
	SEO        SEO    `json:"seo"`
}

// Draft is the mutable in-progress state of a page customization. Editor
// operations follow an immutable-update discipline: each returns a new
// Draft value, leaving the receiver untouched, so the generator can be
// re-run against every intermediate state.
type Draft struct {
	TemplateID     string                    `json:"templateId"`
	ColorSchemeID  string                    `json:"colorSchemeId"`
	Content        map[string]SectionContent `json:"content"`
	Customizations Customizations            `json:"customizations"`
}

// NewDraft creates a draft bound to the given template, preselecting its
// default (first) color scheme and the default font.
func NewDraft(t *catalog.Template) Draft {
	return Draft{
		TemplateID:    t.ID,
		ColorSchemeID: t.ColorSchemes[0].ID,
		Content:       map[string]SectionContent{},
		Customizations: Customizations{
			Font:       "inter",
			Animations: true,
		},
	}
}

// cloneContent copies the content map so updates never alias the original.
func (d Draft) cloneContent() map[string]SectionContent {
	out := make(map[string]SectionContent, len(d.Content)+1)
	for k, v := range d.Content {
		out[k] = v
	}
	return out
}

// UpdateSection applies a partial update to the section's content and
// returns the updated draft. Unset patch fields keep their current value.
func (d Draft) UpdateSection(sectionID string, patch SectionPatch) Draft {
	content := d.cloneContent()
	content[sectionID] = content[sectionID].apply(patch)
	d.Content = content
	return d
}

// SetColorScheme selects a color scheme by ID. No validation happens here;
// unknown IDs fall back to the template default at generation time.
func (d Draft) SetColorScheme(schemeID string) Draft {
	d.ColorSchemeID = schemeID
	return d
}

// SetFont selects a font by ID. Unknown IDs fall back at generation time.
func (d Draft) SetFont(fontID string) Draft {
	d.Customizations.Font = fontID
	return d
}

// SetAnimations toggles CSS animations in the generated document.
func (d Draft) SetAnimations(on bool) Draft {
	d.Customizations.Animations = on
	return d
}

// SetSEOTitle sets the document title.
func (d Draft) SetSEOTitle(title string) Draft {
	d.Customizations.SEO.Title = title
	return d
}

// SetSEODescription sets the meta description.
func (d Draft) SetSEODescription(desc string) Draft {
	d.Customizations.SEO.Description = desc
	return d
}

// SetSEOKeywords replaces the meta keywords list.
func (d Draft) SetSEOKeywords(keywords []string) Draft {
	kw := make([]string, len(keywords))
	copy(kw, keywords)
	d.Customizations.SEO.Keywords = kw
	return d
}
