// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package builder

import (
	"encoding/json"
	"strings"

	"boostkit/internal/catalog"
)

// Default strings substituted for absent or empty draft content. Keeping
// them in one table (rather than inline fallbacks scattered through the
// fragments) makes the substitution policy auditable.
const (
	defaultHeadline      = "Transform Your Business Today"
	defaultSubheadline   = "Discover the solution that will revolutionize the way you work and help you achieve incredible results."
	defaultCTAText       = "Get Started Now"
	defaultCTALink       = "#"
	defaultFeaturesTitle = "Why Choose Us?"
	defaultPricingTitle  = "Choose Your Plan"

	defaultFeatures = "\U0001F680 Fast & Reliable\nGet results quickly with our optimized solutions\n\n\U0001F3AF Targeted Results\nPrecision-focused approach that delivers exactly what you need\n\n\U0001F48E Premium Quality\nTop-tier quality standards ensuring the best value for your investment"

	// heroBackgroundURL is the decorative hero overlay image.
	heroBackgroundURL = "https://images.unsplash.com/photo-1557804506-669a67965ba0?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920&q=80"
)

// Plan is one pricing tier rendered as a card.
type Plan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// defaultPlans renders when the draft supplies no pricing plans at all.
var defaultPlans = []Plan{
	{Name: "Basic", Price: "$29", Period: "/month", Features: []string{"Feature 1", "Feature 2", "Feature 3"}},
	{Name: "Pro", Price: "$59", Period: "/month", Features: []string{"Everything in Basic", "Advanced Features", "Priority Support", "Custom Integrations"}, Popular: true},
	{Name: "Enterprise", Price: "$99", Period: "/month", Features: []string{"Everything in Pro", "Unlimited Users", "White Label", "Dedicated Support"}},
}

// placeholderPricingCard renders when the supplied plans string is not
// valid JSON. Malformed content degrades, it never fails.
const placeholderPricingCard = `<div class="pricing-card"><h3>Basic Plan</h3><div class="price">$29<span class="price-period">/month</span></div><p>Perfect for getting started</p></div>`

// Feature is one parsed entry of the delimiter-encoded features block.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Generate produces a complete standalone HTML document from a template
// and a draft. It is pure and deterministic: identical input always yields
// a byte-identical document, and malformed draft content degrades to
// defaults rather than erroring.
func Generate(t *catalog.Template, d Draft) string {
	scheme := catalog.ResolveScheme(t, d.ColorSchemeID)
	font := catalog.ResolveFont(d.Customizations.Font)

	var doc strings.Builder
	writeHead(&doc, d, scheme, font)
	writeHero(&doc, d.Content["hero"])
	if t.HasSection(catalog.SectionFeatures) {
		writeFeatures(&doc, d.Content["features"])
	}
	if t.HasSection(catalog.SectionPricing) {
		writePricing(&doc, d.Content["pricing"])
	}
	writeFooter(&doc)
	return doc.String()
}

// orDefault substitutes fallback for empty values.
func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// fontStylesheetURL builds the Google Fonts stylesheet link from the first
// family name of the font's CSS stack.
func fontStylesheetURL(font catalog.FontOption) string {
	family := strings.TrimSpace(strings.Split(font.Family, ",")[0])
	return "https://fonts.googleapis.com/css2?family=" + strings.ReplaceAll(family, " ", "+") + "&display=swap"
}

// ParseFeatures splits the delimiter-encoded features block into entries.
// Entries are separated by blank lines; within an entry the first line is
// the icon, the second the title, and any remaining lines join into the
// description. Missing lines degrade to empty strings.
func ParseFeatures(block string) []Feature {
	var out []Feature
	for _, entry := range strings.Split(block, "\n\n") {
		lines := strings.Split(entry, "\n")
		f := Feature{Icon: lines[0]}
		if len(lines) > 1 {
			f.Title = lines[1]
		}
		if len(lines) > 2 {
			f.Description = strings.Join(lines[2:], " ")
		}
		out = append(out, f)
	}
	return out
}

// ParsePlans decodes the JSON-encoded plan array. An empty string yields
// the default plan set; invalid JSON yields (nil, false) so the caller can
// render the placeholder card instead. A JSON null decodes into a nil
// slice without an error, so it is rejected explicitly; an empty array is
// a valid zero-card grid.
func ParsePlans(plansJSON string) ([]Plan, bool) {
	if plansJSON == "" {
		return defaultPlans, true
	}
	var plans []Plan
	if err := json.Unmarshal([]byte(plansJSON), &plans); err != nil {
		return nil, false
	}
	if plans == nil {
		return nil, false
	}
	return plans, true
}

func writeHead(doc *strings.Builder, d Draft, scheme catalog.ColorScheme, font catalog.FontOption) {
	seo := d.Customizations.SEO

	doc.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	doc.WriteString("    <meta charset=\"UTF-8\">\n")
	doc.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	doc.WriteString("    <title>" + seo.Title + "</title>\n")
	doc.WriteString("    <meta name=\"description\" content=\"" + seo.Description + "\">\n")
	doc.WriteString("    <meta name=\"keywords\" content=\"" + strings.Join(seo.Keywords, ", ") + "\">\n")
	doc.WriteString("    <link href=\"" + fontStylesheetURL(font) + "\" rel=\"stylesheet\">\n")
	writeStyles(doc, scheme, font, d.Customizations.Animations)
	doc.WriteString("</head>\n<body>\n")
}

// writeStyles emits the CSS skeleton with the scheme's color tokens
// substituted into the gradient, card, and button rules. Animation
// keyframes and the per-element animation declarations are emitted only
// when animations are enabled.
func writeStyles(doc *strings.Builder, scheme catalog.ColorScheme, font catalog.FontOption, animations bool) {
	anim := func(decl string) string {
		if animations {
			return "\n            " + decl
		}
		return ""
	}

	doc.WriteString("    <style>\n")
	doc.WriteString(`        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: ` + font.Family + `;
            line-height: 1.6;
            color: ` + scheme.Text + `;
            background-color: ` + scheme.Background + `;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 0 20px;
        }

        .hero {
            min-height: 100vh;
            display: flex;
            align-items: center;
            justify-content: center;
            text-align: center;
            background: linear-gradient(135deg, ` + scheme.Primary + ` 0%, ` + scheme.Secondary + ` 100%);
            color: white;
            position: relative;
            overflow: hidden;
        }

        .hero::before {
            content: '';
            position: absolute;
            top: 0;
            left: 0;
            right: 0;
            bottom: 0;
            background: url('` + heroBackgroundURL + `') center/cover;
            opacity: 0.1;
            z-index: 1;
        }

        .hero-content {
            position: relative;
            z-index: 2;
            max-width: 800px;
        }

        .hero h1 {
            font-size: clamp(2.5rem, 5vw, 4rem);
            font-weight: 700;
            margin-bottom: 1.5rem;
            text-shadow: 0 2px 4px rgba(0,0,0,0.1);` + anim("animation: fadeInUp 1s ease-out;") + `
        }

        .hero p {
            font-size: clamp(1.2rem, 2.5vw, 1.5rem);
            margin-bottom: 2rem;
            opacity: 0.9;` + anim("animation: fadeInUp 1s ease-out 0.3s both;") + `
        }

        .cta-button {
            display: inline-block;
            padding: 1rem 2.5rem;
            background: ` + scheme.Accent + `;
            color: white;
            text-decoration: none;
            border-radius: 50px;
            font-weight: 600;
            font-size: 1.2rem;
            transition: all 0.3s ease;
            box-shadow: 0 4px 15px rgba(0,0,0,0.2);` + anim("animation: fadeInUp 1s ease-out 0.6s both;") + `
        }

        .cta-button:hover {
            transform: translateY(-2px);
            box-shadow: 0 8px 25px rgba(0,0,0,0.3);
        }

        .features {
            padding: 100px 0;
            background: ` + scheme.Background + `;
        }

        .features h2 {
            text-align: center;
            font-size: 3rem;
            margin-bottom: 3rem;
            color: ` + scheme.Primary + `;
        }

        .features-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 2rem;
            margin-top: 3rem;
        }

        .feature-card {
            background: white;
            padding: 2.5rem;
            border-radius: 20px;
            text-align: center;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
            transition: transform 0.3s ease;
            border: 2px solid transparent;
        }

        .feature-card:hover {
            transform: translateY(-10px);
            border-color: ` + scheme.Primary + `;
        }

        .feature-icon {
            font-size: 3rem;
            margin-bottom: 1.5rem;
            display: block;
        }

        .feature-card h3 {
            font-size: 1.5rem;
            margin-bottom: 1rem;
            color: ` + scheme.Primary + `;
        }

        .feature-card p {
            color: ` + scheme.Text + `;
            opacity: 0.8;
        }

        .pricing {
            padding: 100px 0;
            background: linear-gradient(45deg, ` + scheme.Primary + `15, ` + scheme.Secondary + `15);
        }

        .pricing h2 {
            text-align: center;
            font-size: 3rem;
            margin-bottom: 3rem;
            color: ` + scheme.Primary + `;
        }

        .pricing-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 2rem;
            margin-top: 3rem;
        }

        .pricing-card {
            background: white;
            padding: 3rem 2rem;
            border-radius: 20px;
            text-align: center;
            box-shadow: 0 15px 40px rgba(0,0,0,0.1);
            position: relative;
            transition: transform 0.3s ease;
        }

        .pricing-card:hover {
            transform: scale(1.05);
        }

        .pricing-card.popular {
            border: 3px solid ` + scheme.Accent + `;
            transform: scale(1.05);
        }

        .pricing-card.popular::before {
            content: 'Most Popular';
            position: absolute;
            top: -15px;
            left: 50%;
            transform: translateX(-50%);
            background: ` + scheme.Accent + `;
            color: white;
            padding: 0.5rem 2rem;
            border-radius: 20px;
            font-weight: 600;
            font-size: 0.9rem;
        }

        .price {
            font-size: 3rem;
            font-weight: 700;
            color: ` + scheme.Primary + `;
            margin: 1rem 0;
        }

        .price-period {
            font-size: 1rem;
            color: ` + scheme.Text + `;
            opacity: 0.7;
        }

        .footer {
            background: ` + scheme.Primary + `;
            color: white;
            padding: 3rem 0;
            text-align: center;
        }
`)

	if animations {
		doc.WriteString(`
        @keyframes fadeInUp {
            from {
                opacity: 0;
                transform: translateY(30px);
            }
            to {
                opacity: 1;
                transform: translateY(0);
            }
        }

        @keyframes pulse {
            0%, 100% {
                transform: scale(1);
            }
            50% {
                transform: scale(1.05);
            }
        }
`)
	}

	doc.WriteString(`
        @media (max-width: 768px) {
            .hero h1 {
                font-size: 2.5rem;
            }

            .hero p {
                font-size: 1.2rem;
            }

            .features h2,
            .pricing h2 {
                font-size: 2rem;
            }

            .feature-card,
            .pricing-card {
                padding: 2rem 1.5rem;
            }
        }
    </style>
`)
}

func writeHero(doc *strings.Builder, content SectionContent) {
	doc.WriteString(`    <section class="hero">
        <div class="container">
            <div class="hero-content">
                <h1>` + orDefault(content.Headline, defaultHeadline) + `</h1>
                <p>` + orDefault(content.Subheadline, defaultSubheadline) + `</p>
                <a href="` + orDefault(content.CTALink, defaultCTALink) + `" class="cta-button">` + orDefault(content.CTAText, defaultCTAText) + `</a>
            </div>
        </div>
    </section>
`)
}

func writeFeatures(doc *strings.Builder, content SectionContent) {
	doc.WriteString(`    <section class="features">
        <div class="container">
            <h2>` + orDefault(content.Title, defaultFeaturesTitle) + `</h2>
            <div class="features-grid">
`)
	for _, f := range ParseFeatures(orDefault(content.Features, defaultFeatures)) {
		doc.WriteString(`                <div class="feature-card">
                    <span class="feature-icon">` + f.Icon + `</span>
                    <h3>` + f.Title + `</h3>
                    <p>` + f.Description + `</p>
                </div>
`)
	}
	doc.WriteString(`            </div>
        </div>
    </section>
`)
}

func writePricing(doc *strings.Builder, content SectionContent) {
	doc.WriteString(`    <section class="pricing">
        <div class="container">
            <h2>` + orDefault(content.Title, defaultPricingTitle) + `</h2>
            <div class="pricing-grid">
`)

	plans, ok := ParsePlans(content.Plans)
	if !ok {
		doc.WriteString("                " + placeholderPricingCard + "\n")
	} else {
		for _, plan := range plans {
			writePricingCard(doc, plan)
		}
	}

	doc.WriteString(`            </div>
        </div>
    </section>
`)
}

func writePricingCard(doc *strings.Builder, plan Plan) {
	cardClass := "pricing-card"
	if plan.Popular {
		cardClass = "pricing-card popular"
	}
	doc.WriteString(`                <div class="` + cardClass + `">
                    <h3>` + plan.Name + `</h3>
                    <div class="price">` + plan.Price + `<span class="price-period">` + orDefault(plan.Period, "/month") + `</span></div>
                    <ul style="list-style: none; padding: 0; margin: 2rem 0;">
`)
	for _, feature := range plan.Features {
		doc.WriteString(`                        <li style="padding: 0.5rem 0; border-bottom: 1px solid #eee;">&#10003; ` + feature + `</li>
`)
	}
	doc.WriteString(`                    </ul>
                    <a href="#" class="cta-button" style="display: inline-block; margin-top: 1rem;">Choose Plan</a>
                </div>
`)
}

func writeFooter(doc *strings.Builder) {
	doc.WriteString(`    <footer class="footer">
        <div class="container">
            <p>&copy; 2024 Your Company. All rights reserved.</p>
        </div>
    </footer>
</body>
</html>
`)
}
