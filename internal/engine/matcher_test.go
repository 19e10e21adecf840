package engine

import (
	"reflect"
	"testing"

	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

func TestMatchManufacturingScenario(t *testing.T) {
	e := newTestEngine(t)
	n := e.Normalize(manufacturingAnswers())

	matches := e.MatchVendors(n)

	if len(matches) == 0 {
		t.Fatal("Expected at least one match")
	}
	found := false
	for _, m := range matches {
		if m.Vendor.ServesIndustry("manufacturing") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected at least one manufacturing vendor in the shortlist")
	}
	// The image-recognition specialist should win this scenario
	if matches[0].Vendor.ID != "hayabusa-vision" {
		t.Errorf("Expected hayabusa-vision first, got %s (%.1f)",
			matches[0].Vendor.ID, matches[0].Score)
	}
	if len(matches[0].MatchReasons) == 0 {
		t.Error("Expected reasons for the top match")
	}
	for _, m := range matches {
		if m.Score <= matchFloor || m.Score > 100 {
			t.Errorf("Vendor %s score %.1f outside (floor,100]", m.Vendor.ID, m.Score)
		}
	}
}

func TestMatchOrderingInvariant(t *testing.T) {
	e := newTestEngine(t)
	n := e.Normalize(manufacturingAnswers())

	matches := e.MatchVendors(n)

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.Score < cur.Score {
			t.Errorf("Scores not descending at %d: %.1f < %.1f", i, prev.Score, cur.Score)
		}
		if prev.Score == cur.Score && prev.Vendor.Rating < cur.Vendor.Rating {
			t.Errorf("Rating tiebreak violated at %d", i)
		}
	}
}

func TestMatchAllVendorsBelowFloor(t *testing.T) {
	fixClock(t)
	c := catalog.New([]catalog.Vendor{
		{
			ID:         "niche",
			Name:       "Niche Vendor",
			Rating:     5,
			Industries: []string{"healthcare"},
			PriceRange: catalog.PriceRange{Min: 1000000, Max: 2000000},
			Metrics:    catalog.Metrics{QualityScore: 5, OnTimeDeliveryRate: 1},
			MonthlyCapacity: 2,
		},
	})
	e := New(c, questionnaire.DefaultTemplate())
	n := e.Normalize([]questionnaire.Answer{
		answer(questionnaire.QIndustry, `"spacemining"`),
		answer(questionnaire.QBudget, `19000000`),
	})

	matches := e.MatchVendors(n)

	if len(matches) != 0 {
		t.Errorf("Expected empty shortlist, got %d matches", len(matches))
	}
}

func TestMatchBudgetCaveat(t *testing.T) {
	e := newTestEngine(t)
	// Budget far below the premium vendor's range but inside others'
	answers := []questionnaire.Answer{
		answer(questionnaire.QIndustry, `"finance"`),
		answer(questionnaire.QPainPoints, `["accuracy"]`),
		answer(questionnaire.QBudget, `4500000`),
		answer(questionnaire.QTimeline, `"6months"`),
	}
	n := e.Normalize(answers)

	matches := e.MatchVendors(n)

	var premium *VendorMatch
	for i := range matches {
		if matches[i].Vendor.ID == "kaname-secure" {
			premium = &matches[i]
		}
	}
	if premium == nil {
		t.Fatal("Expected kaname-secure to clear the floor on industry fit")
	}
	foundCaveat := false
	for _, c := range premium.Caveats {
		if c == "Budget is below the vendor's typical price range" {
			foundCaveat = true
		}
	}
	if !foundCaveat {
		t.Errorf("Expected budget caveat, got %v", premium.Caveats)
	}
}

func TestMatchLateAvailabilityCaveat(t *testing.T) {
	e := newTestEngine(t)
	// ASAP timeline: kaname-secure's 2026 availability is too late
	answers := []questionnaire.Answer{
		answer(questionnaire.QIndustry, `"finance"`),
		answer(questionnaire.QPainPoints, `["accuracy"]`),
		answer(questionnaire.QBudget, `8000000`),
		answer(questionnaire.QTimeline, `"asap"`),
	}
	n := e.Normalize(answers)

	matches := e.MatchVendors(n)

	for _, m := range matches {
		if m.Vendor.ID != "kaname-secure" {
			continue
		}
		for _, c := range m.Caveats {
			if c == "Earliest availability is later than the requested timeline" {
				return
			}
		}
		t.Errorf("Expected availability caveat for kaname-secure, got %v", m.Caveats)
		return
	}
	t.Fatal("Expected kaname-secure in the shortlist")
}

func TestMatchDoesNotMutateCatalog(t *testing.T) {
	e := newTestEngine(t)
	before := make([]catalog.Vendor, len(e.Catalog().Vendors()))
	copy(before, e.Catalog().Vendors())

	e.MatchVendors(e.Normalize(manufacturingAnswers()))

	if !reflect.DeepEqual(before, e.Catalog().Vendors()) {
		t.Error("Matching mutated the vendor catalog")
	}
}

func TestMatchDeterministic(t *testing.T) {
	e := newTestEngine(t)
	n := e.Normalize(manufacturingAnswers())

	first := e.MatchVendors(n)
	second := e.MatchVendors(n)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical match results for repeated calls")
	}
}
