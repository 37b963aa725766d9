package quote

import (
	"fmt"
	"math"
)

type SiteType string

const (
	SiteVitrine   SiteType = "vitrine"
	SiteEcommerce SiteType = "ecommerce"
	SiteSurMesure SiteType = "sur-mesure"
)

// Options for the fixed devis estimator. Field names follow the public form.
type Options struct {
	Blog         bool `json:"blog"`
	Paiement     bool `json:"paiement"`
	EspaceMembre bool `json:"espaceMembre"`
	Maintenance  bool `json:"maintenance"`
}

var baseCents = map[SiteType]int{
	SiteVitrine:   48000,
	SiteEcommerce: 96000,
	SiteSurMesure: 132000,
}

const perPageCents = 7200

const (
	optionBlogCents         = 15000
	optionPaiementCents     = 27000
	optionEspaceMembreCents = 36000
	optionMaintenanceCents  = 12000
)

// EstimateCents computes the fixed devis price in cents: base price for the
// site type, a per-page surcharge beyond the first page, and a flat surcharge
// per enabled option. Unknown site types price as vitrine.
func EstimateCents(siteType SiteType, pageCount int, opts Options) int {
	base, ok := baseCents[siteType]
	if !ok {
		base = baseCents[SiteVitrine]
	}

	extraPages := pageCount - 1
	if extraPages < 0 {
		extraPages = 0
	}

	total := base + extraPages*perPageCents

	if opts.Blog {
		total += optionBlogCents
	}
	if opts.Paiement {
		total += optionPaiementCents
	}
	if opts.EspaceMembre {
		total += optionEspaceMembreCents
	}
	if opts.Maintenance {
		total += optionMaintenanceCents
	}

	return total
}

// FormatEuros renders cents as an integer-euro string, e.g. "480 €".
func FormatEuros(cents int) string {
	euros := int(math.Round(float64(cents) / 100))
	return fmt.Sprintf("%d €", euros)
}
