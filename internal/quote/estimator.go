package quote

import (
	"math"
	"strings"
)

type WebsiteType string

const (
	WebBusiness  WebsiteType = "business"
	WebEcommerce WebsiteType = "ecommerce"
	WebCustom    WebsiteType = "custom"
)

// Options for the web-design range estimator.
type WebOptions struct {
	Blog            bool `json:"blog"`
	PaymentGateway  bool `json:"paymentGateway"`
	AdminPanel      bool `json:"adminPanel"`
	SeoOptimization bool `json:"seoOptimization"`
}

type RangeEuros struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

const (
	rangeFloorEuros   = 100
	rangeCeilingEuros = 500
)

type baseRange struct {
	min, max int
}

var webBaseEuros = map[WebsiteType]baseRange{
	WebBusiness:  {min: 120, max: 190},
	WebEcommerce: {min: 160, max: 280},
	WebCustom:    {min: 210, max: 315},
}

var webPerPageEuros = map[WebsiteType]int{
	WebBusiness:  12,
	WebEcommerce: 16,
	WebCustom:    18,
}

const (
	webOptionBlogEuros  = 20
	webOptionPayEuros   = 35
	webOptionAdminEuros = 45
	webOptionSeoEuros   = 15
	keywordHitCap       = 8
	keywordPointsPerHit = 6
	unknownStackDelta   = 12
)

// Free-text signals the score counts at most once each.
var scoreKeywords = []string{
	"api", "auth", "login", "dashboard", "admin", "booking", "reservation",
	"chat", "multilang", "multi-language", "seo", "stripe", "paypal",
	"paiement", "payment", "cms", "blog", "upload", "integration",
}

var stackDeltas = map[string]int{
	"Next.js":   10,
	"React":     8,
	"WordPress": -6,
	"Laravel":   6,
	"Django":    6,
	"Symfony":   8,
}

// complexityScore accumulates the heuristic points: site-type complexity,
// page-count threshold, heavyweight options, description length buckets,
// keyword hits, and a per-stack weight. Unknown stacks score like "Other".
func complexityScore(t WebsiteType, pageCount int, opts WebOptions, stack, message string) int {
	msg := strings.ToLower(strings.TrimSpace(message))

	score := 0
	if t == WebCustom {
		score += 10
	}
	if pageCount-3 >= 6 {
		score += 10
	}
	if opts.AdminPanel {
		score += 12
	}
	if opts.PaymentGateway {
		score += 10
	}

	if len(msg) >= 120 {
		score += 6
	}
	if len(msg) >= 260 {
		score += 10
	}
	if len(msg) >= 520 {
		score += 14
	}

	hits := 0
	for _, k := range scoreKeywords {
		if strings.Contains(msg, k) {
			hits++
		}
	}
	if hits > keywordHitCap {
		hits = keywordHitCap
	}
	score += hits * keywordPointsPerHit

	if delta, ok := stackDeltas[stack]; ok {
		score += delta
	} else {
		score += unknownStackDelta
	}

	return score
}

// scoreAdjustment maps the score into a small euro delta range.
func scoreAdjustment(score int) (min, max int) {
	min = int(math.Round(float64(score) * 0.35))
	if min < -10 {
		min = -10
	}
	max = int(math.Round(float64(score) * 0.6))
	if max < 0 {
		max = 0
	}
	return min, max
}

func clampEuros(v int) int {
	if v < rangeFloorEuros {
		return rangeFloorEuros
	}
	if v > rangeCeilingEuros {
		return rangeCeilingEuros
	}
	return v
}

// EstimateRangeEuros is the richer web-design estimator: a (min, max) euro
// range built from the base range per site type, a per-page surcharge beyond
// 3 pages, flat option surcharges, and the heuristic score adjustment. The
// result is always within [100, 500] with min <= max. Unknown website types
// price as business.
func EstimateRangeEuros(t WebsiteType, pageCount int, opts WebOptions, stack, message string) RangeEuros {
	base, ok := webBaseEuros[t]
	if !ok {
		t = WebBusiness
		base = webBaseEuros[t]
	}

	extraPages := pageCount - 3
	if extraPages < 0 {
		extraPages = 0
	}
	pagesExtra := extraPages * webPerPageEuros[t]

	optionsExtra := 0
	if opts.Blog {
		optionsExtra += webOptionBlogEuros
	}
	if opts.PaymentGateway {
		optionsExtra += webOptionPayEuros
	}
	if opts.AdminPanel {
		optionsExtra += webOptionAdminEuros
	}
	if opts.SeoOptimization {
		optionsExtra += webOptionSeoEuros
	}

	adjMin, adjMax := scoreAdjustment(complexityScore(t, pageCount, opts, stack, message))

	min := clampEuros(base.min + pagesExtra + optionsExtra + adjMin)
	max := clampEuros(base.max + pagesExtra + optionsExtra + adjMax)
	if min > max {
		min, max = max, min
	}

	return RangeEuros{Min: min, Max: max}
}
