package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

// VendorMatch is one scored vendor with its explanation
type VendorMatch struct {
	Vendor       catalog.Vendor `json:"vendor"`
	Score        float64        `json:"score"` // [0,100]
	MatchReasons []string       `json:"matchReasons"`
	Caveats      []string       `json:"caveats"`
}

// matchFloor excludes vendors with no real fit signal: track record
// plus availability alone peak at exactly this value, so a vendor
// must score on industry, tech, or budget to appear at all.
const matchFloor = 25.0

// painPointTech maps pain-point codes to the tech-stack dimension
// that addresses them. Codes without an entry contribute nothing.
var painPointTech = map[string]func(catalog.TechStack) int{
	"quality":    func(t catalog.TechStack) int { return t.ImageRecognition },
	"speed":      func(t catalog.TechStack) int { return t.Optimization },
	"cost":       func(t catalog.TechStack) int { return t.Optimization },
	"labor":      func(t catalog.TechStack) int { return t.LLM },
	"accuracy":   func(t catalog.TechStack) int { return t.LLM },
	"forecast":   func(t catalog.TechStack) int { return t.TimeSeries },
	"visibility": func(t catalog.TechStack) int { return t.TimeSeries },
}

// timelineTolerance maps a timeline tier to how long the requester
// can wait for a vendor to become available
var timelineTolerance = map[string]time.Duration{
	"asap":    14 * 24 * time.Hour,
	"3months": 90 * 24 * time.Hour,
	"6months": 180 * 24 * time.Hour,
	"1year":   365 * 24 * time.Hour,
}

const defaultTolerance = 180 * 24 * time.Hour

// matchFactor is one weighted scoring dimension. The score func
// returns a fraction in [0,1] plus the reason/caveat wording, so the
// weights live in one place and the explanations are derived from the
// same list that produces the score.
type matchFactor struct {
	name   string
	weight float64
	score  func(e *Engine, n questionnaire.Normalized, v catalog.Vendor, now time.Time) (frac float64, reason, caveat string)
}

var matchFactors = []matchFactor{
	{"industry", 30, scoreIndustry},
	{"tech", 25, scoreTechStack},
	{"budget", 20, scoreBudget},
	{"track_record", 15, scoreTrackRecord},
	{"availability", 10, scoreAvailability},
}

// MatchVendors scores every catalog vendor against the answers and
// returns those above the floor, best first. Ties are broken by
// rating, then review count, then vendor ID, so the ordering is
// stable across runs.
func (e *Engine) MatchVendors(n questionnaire.Normalized) []VendorMatch {
	now := timeNow()

	var results []VendorMatch
	for _, v := range e.catalog.Vendors() {
		type scored struct {
			points, weight float64
			reason, caveat string
		}
		total := 0.0
		var scores []scored
		for _, f := range matchFactors {
			frac, reason, caveat := f.score(e, n, v, now)
			points := clamp(frac, 0, 1) * f.weight
			total += points
			scores = append(scores, scored{points, f.weight, reason, caveat})
		}
		total = clamp(total, 0, 100)
		if total <= matchFloor {
			continue
		}

		// Reasons: factors that scored at least half their weight,
		// strongest contribution first. Caveats: factors that lost at
		// least a third of their weight, biggest loss first.
		var reasons, caveats []scored
		for _, s := range scores {
			if s.reason != "" && s.points >= s.weight/2 {
				reasons = append(reasons, s)
			}
			if s.caveat != "" && s.weight-s.points >= s.weight/3 {
				caveats = append(caveats, s)
			}
		}
		sort.SliceStable(reasons, func(i, j int) bool { return reasons[i].points > reasons[j].points })
		sort.SliceStable(caveats, func(i, j int) bool {
			return caveats[i].weight-caveats[i].points > caveats[j].weight-caveats[j].points
		})

		m := VendorMatch{
			Vendor:       v,
			Score:        math.Round(total*10) / 10,
			MatchReasons: make([]string, 0, len(reasons)),
			Caveats:      make([]string, 0, len(caveats)),
		}
		for _, s := range reasons {
			m.MatchReasons = append(m.MatchReasons, s.reason)
		}
		for _, s := range caveats {
			m.Caveats = append(m.Caveats, s.caveat)
		}
		results = append(results, m)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Vendor.Rating != b.Vendor.Rating {
			return a.Vendor.Rating > b.Vendor.Rating
		}
		if a.Vendor.ReviewCount != b.Vendor.ReviewCount {
			return a.Vendor.ReviewCount > b.Vendor.ReviewCount
		}
		return a.Vendor.ID < b.Vendor.ID
	})
	return results
}

func scoreIndustry(e *Engine, n questionnaire.Normalized, v catalog.Vendor, _ time.Time) (float64, string, string) {
	if n.Industry == "" {
		return 0, "", ""
	}
	label := e.catalog.IndustryLabel(n.Industry)
	if v.ServesIndustry(n.Industry) {
		return 1, fmt.Sprintf("Direct experience in %s", label), ""
	}
	for _, related := range e.catalog.RelatedIndustries(n.Industry) {
		if v.ServesIndustry(related) {
			return 0.5,
				fmt.Sprintf("Experience in %s, adjacent to %s", e.catalog.IndustryLabel(related), label),
				fmt.Sprintf("No direct %s track record", label)
		}
	}
	return 0, "", fmt.Sprintf("No listed experience in %s", label)
}

func scoreTechStack(_ *Engine, n questionnaire.Normalized, v catalog.Vendor, _ time.Time) (float64, string, string) {
	total, mapped := 0, 0
	for _, code := range n.PainPoints {
		if dim, ok := painPointTech[code]; ok {
			total += dim(v.TechStack)
			mapped++
		}
	}
	if mapped == 0 {
		return 0, "", ""
	}
	avg := float64(total) / float64(mapped)
	return avg / 5,
		"Strong technology fit for the selected challenges",
		"Limited technology depth for the selected challenges"
}

func scoreBudget(_ *Engine, n questionnaire.Normalized, v catalog.Vendor, _ time.Time) (float64, string, string) {
	mid := n.BudgetMidpoint
	lo := float64(v.PriceRange.Min)
	hi := float64(v.PriceRange.Max)
	if mid >= lo && mid <= hi {
		return 1, "Budget fits the vendor's typical price range", ""
	}

	// Decay with relative distance outside the nearer bound; no
	// points beyond 50% outside.
	var dist float64
	var caveat string
	if mid < lo {
		caveat = "Budget is below the vendor's typical price range"
		dist = 1
		if lo > 0 {
			dist = (lo - mid) / lo
		}
	} else {
		caveat = "Budget is above the vendor's typical price range"
		dist = 1
		if hi > 0 {
			dist = (mid - hi) / hi
		}
	}
	return 1 - dist/0.5, "Budget is close to the vendor's typical price range", caveat
}

func scoreTrackRecord(_ *Engine, _ questionnaire.Normalized, v catalog.Vendor, _ time.Time) (float64, string, string) {
	frac := v.Metrics.QualityScore/5*0.5 + v.Metrics.OnTimeDeliveryRate*0.5
	return frac, "Strong delivery track record", ""
}

func scoreAvailability(_ *Engine, n questionnaire.Normalized, v catalog.Vendor, now time.Time) (float64, string, string) {
	tolerance, ok := timelineTolerance[n.Timeline]
	if !ok {
		tolerance = defaultTolerance
	}

	frac := 1.0
	var caveat string
	if !v.AvailableFrom.IsZero() && v.AvailableFrom.After(now.Add(tolerance)) {
		frac -= 0.6
		caveat = "Earliest availability is later than the requested timeline"
	}
	if v.MonthlyCapacity <= 0 {
		frac -= 0.4
		if caveat == "" {
			caveat = "Vendor capacity is currently exhausted"
		}
	}
	return frac, "Available within the requested timeline", caveat
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
