package engine

import (
	"fmt"
	"math"

	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

// Confidence grades how much fallback was needed to produce an estimate
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// CostEstimate is a price band with an explanation of how it was derived
type CostEstimate struct {
	Range      catalog.PriceRange `json:"range"`
	Confidence Confidence         `json:"confidence"`
	Basis      []string           `json:"basis"`
}

// Cost adjustment policy. Each factor scales the base band
// multiplicatively and is recorded in the estimate's basis.
const (
	integrationSurcharge = 1.30 // upper bound
	dataPrepSurcharge    = 1.25 // upper bound
	complianceSurcharge  = 1.15 // both bounds
	expediteSurcharge    = 1.20 // upper bound
)

// EstimateCost derives a price band from the normalized answers. The
// pass is deterministic: a base band looked up from the taxonomy,
// multiplicative adjustments for complexity signals, then clamping.
func (e *Engine) EstimateCost(n questionnaire.Normalized) CostEstimate {
	base, fallbacks := e.catalog.BaseRange(n.Industry, n.UseCase)

	basis := make([]string, 0, 5)
	switch fallbacks {
	case 0:
		basis = append(basis, fmt.Sprintf("Base range for %s / %s projects",
			e.catalog.IndustryLabel(n.Industry), n.UseCase))
	case 1:
		basis = append(basis, fmt.Sprintf("Use case not in the %s taxonomy; using the industry base range",
			e.catalog.IndustryLabel(n.Industry)))
	default:
		basis = append(basis, "Industry not recognized; using the default base range")
	}

	lo := float64(base.Min)
	hi := float64(base.Max)

	if n.IntegrationNeeded {
		hi *= integrationSurcharge
		basis = append(basis, "System integration surcharge: +30% on the upper bound")
	}
	dataMissing := n.DataAvailability == "no" || n.DataAvailability == "unknown" || n.DataAvailability == ""
	if dataMissing {
		hi *= dataPrepSurcharge
		basis = append(basis, "Data preparation surcharge: +25% on the upper bound")
	}
	if hasSecurityRequirement(n.SecurityRequirements) {
		lo *= complianceSurcharge
		hi *= complianceSurcharge
		basis = append(basis, "Compliance surcharge: +15% on both bounds")
	}
	if n.Timeline == "asap" {
		hi *= expediteSurcharge
		basis = append(basis, "Expedite surcharge: +20% on the upper bound")
	}

	r := catalog.PriceRange{
		Min: int(math.Round(math.Max(lo, 0))),
		Max: int(math.Round(math.Max(hi, 0))),
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}

	confidence := ConfidenceMedium
	switch {
	case fallbacks > 1 || dataMissing:
		confidence = ConfidenceLow
	case fallbacks == 0 && n.DataAvailability == "yes_digital":
		confidence = ConfidenceHigh
	}

	return CostEstimate{Range: r, Confidence: confidence, Basis: basis}
}

// hasSecurityRequirement reports whether any selected flag names a
// real constraint ("none" and an empty selection do not)
func hasSecurityRequirement(flags []string) bool {
	for _, f := range flags {
		if f != "none" {
			return true
		}
	}
	return false
}
