// Package catalog holds the immutable reference data the
// recommendation engine scores against: the vendor list, the
// industry/use-case taxonomy, price bands, and the phrase tables used
// by the specification generator. A Catalog is loaded once at startup
// and is safe for unsynchronized concurrent reads.
package catalog

// Catalog is the loaded reference data set
type Catalog struct {
	vendors []Vendor
	source  string
}

// New builds a catalog from the given vendor list, repairing invalid
// records: a price range with min > max is swapped rather than
// rejected, so bad reference data degrades instead of crashing.
func New(vendors []Vendor) *Catalog {
	repaired := make([]Vendor, len(vendors))
	copy(repaired, vendors)
	for i := range repaired {
		if repaired[i].PriceRange.Min > repaired[i].PriceRange.Max {
			repaired[i].PriceRange.Min, repaired[i].PriceRange.Max =
				repaired[i].PriceRange.Max, repaired[i].PriceRange.Min
		}
	}
	return &Catalog{vendors: repaired, source: "custom"}
}

// Vendors returns the vendor list. Callers must not mutate it.
func (c *Catalog) Vendors() []Vendor {
	return c.vendors
}

// Vendor returns the vendor with the given ID, if present
func (c *Catalog) Vendor(id string) (Vendor, bool) {
	for _, v := range c.vendors {
		if v.ID == id {
			return v, true
		}
	}
	return Vendor{}, false
}

// Source describes where the vendor list came from (embedded data or
// a vendors.db path)
func (c *Catalog) Source() string {
	return c.source
}

// Industries returns the industry codes in display order
func (c *Catalog) Industries() []string {
	return industryOrder
}

// IndustryLabel returns the display name for an industry code, or the
// code itself when unknown
func (c *Catalog) IndustryLabel(industry string) string {
	if label, ok := industryLabels[industry]; ok {
		return label
	}
	return industry
}

// UseCases returns the use cases for an industry, in display order
func (c *Catalog) UseCases(industry string) []string {
	return industryUseCases[industry]
}

// RelatedIndustries returns industries adjacent to the given one
func (c *Catalog) RelatedIndustries(industry string) []string {
	return relatedIndustries[industry]
}

// BaseRange looks up the base price band for an (industry, use case)
// pair. The second return value counts the fallbacks taken: 0 when
// the pair matched, 1 when only the industry matched, 2 when the
// global default band was used.
func (c *Catalog) BaseRange(industry, useCase string) (PriceRange, int) {
	if r, ok := pairBaseRanges[industryUseCase{industry, useCase}]; ok {
		return r, 0
	}
	if r, ok := industryBaseRanges[industry]; ok {
		return r, 1
	}
	return defaultBaseRange, 2
}

// PainPointOrder returns the canonical ordering of pain-point codes
func (c *Catalog) PainPointOrder() []string {
	return painPointOrder
}

// PainPointPhrases returns the issue and goal sentences for a
// pain-point code
func (c *Catalog) PainPointPhrases(code string) (issue, goal string, ok bool) {
	p, ok := painPointPhrases[code]
	return p.Issue, p.Goal, ok
}

// ExistingSystemOrder returns the canonical ordering of system codes
func (c *Catalog) ExistingSystemOrder() []string {
	return existingSystemOrder
}

// ExistingSystemPhrase returns the requirement sentence for a system
// code; codes like "none" have no sentence
func (c *Catalog) ExistingSystemPhrase(code string) (string, bool) {
	s, ok := existingSystemPhrases[code]
	return s, ok
}

// DataAvailabilityPhrase returns the data-requirements sentence for a
// data-availability tier
func (c *Catalog) DataAvailabilityPhrase(tier string) string {
	return dataAvailabilityPhrases[tier]
}

// TimelineLabel returns the document label for a timeline tier
func (c *Catalog) TimelineLabel(tier string) string {
	if label, ok := timelineLabels[tier]; ok {
		return label
	}
	return TimelineUnset
}
