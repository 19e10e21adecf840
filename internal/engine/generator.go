package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

// SpecStatus tracks a generated specification's lifecycle
type SpecStatus string

const (
	StatusDraft    SpecStatus = "draft"
	StatusComplete SpecStatus = "complete"
	StatusSent     SpecStatus = "sent"
)

// GeneratedSpec is the assembled project specification document
type GeneratedSpec struct {
	ID                 string             `json:"id"`
	ProjectName        string             `json:"projectName"`
	Industry           string             `json:"industry"`
	UseCase            string             `json:"useCase"`
	CurrentIssues      string             `json:"currentIssues"`
	Goals              []string           `json:"goals"`
	DataRequirements   string             `json:"dataRequirements"`
	SystemRequirements string             `json:"systemRequirements"`
	RecommendedVendors []string           `json:"recommendedVendors"`
	Budget             catalog.PriceRange `json:"budget"`
	Timeline           string             `json:"timeline"`
	CreatedAt          time.Time          `json:"createdAt"`
	Status             SpecStatus         `json:"status"`
}

// projectNameLimit bounds the length of a name derived from free text
const projectNameLimit = 40

// specNamespace seeds the content-derived spec IDs: the same answer
// set always yields the same document, ID included.
var specNamespace = uuid.MustParse("b6f1a1de-34d2-4f0a-9a5b-7c2e8d1f6a03")

// GenerateSpecification assembles the normalized answers, the cost
// estimate, and the top vendor matches into a specification document.
// The pass does no scoring: every sentence comes from the catalog's
// fixed phrase tables, in catalog order, so output is reproducible
// regardless of the order answers were given in.
func (e *Engine) GenerateSpecification(n questionnaire.Normalized, cost CostEstimate, matches []VendorMatch) GeneratedSpec {
	spec := GeneratedSpec{
		ProjectName: e.projectName(n),
		Industry:    n.Industry,
		UseCase:     n.UseCase,
		Budget:      cost.Range,
		Timeline:    e.catalog.TimelineLabel(n.Timeline),
		CreatedAt:   timeNow().UTC(),
		Status:      StatusDraft,
	}

	selected := make(map[string]bool, len(n.PainPoints))
	for _, code := range n.PainPoints {
		selected[code] = true
	}
	var issues []string
	for _, code := range e.catalog.PainPointOrder() {
		if !selected[code] {
			continue
		}
		if issue, goal, ok := e.catalog.PainPointPhrases(code); ok {
			issues = append(issues, issue)
			spec.Goals = append(spec.Goals, goal)
		}
	}
	if len(issues) == 0 {
		issues = []string{"Current issues have not been specified yet."}
		spec.Goals = []string{"Clarify the problem to solve with AI."}
	}
	spec.CurrentIssues = strings.Join(issues, " ")

	spec.DataRequirements = e.catalog.DataAvailabilityPhrase(n.DataAvailability)
	spec.SystemRequirements = e.systemRequirements(n)

	for _, m := range matches {
		spec.RecommendedVendors = append(spec.RecommendedVendors, m.Vendor.Name)
	}

	if e.requiredAnswered(n) {
		spec.Status = StatusComplete
	}
	spec.ID = specID(spec)
	return spec
}

// specID derives a stable UUID from the document content
func specID(s GeneratedSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%s|%s|%s|%s|%d|%d|%s|%s",
		s.ProjectName, s.Industry, s.UseCase, s.CurrentIssues,
		strings.Join(s.Goals, "|"), s.DataRequirements, s.SystemRequirements,
		s.Budget.Min, s.Budget.Max, s.Timeline, strings.Join(s.RecommendedVendors, "|"))
	return uuid.NewSHA1(specNamespace, []byte(b.String())).String()
}

// projectName derives a name from the free-text description when one
// was given, falling back to an industry/use-case template
func (e *Engine) projectName(n questionnaire.Normalized) string {
	if n.Description != "" {
		name := strings.Join(strings.Fields(n.Description), " ")
		runes := []rune(name)
		if len(runes) > projectNameLimit {
			name = string(runes[:projectNameLimit])
		}
		return name
	}
	if n.Industry != "" && n.UseCase != "" {
		return fmt.Sprintf("%s AI project: %s", e.catalog.IndustryLabel(n.Industry), n.UseCase)
	}
	if n.Industry != "" {
		return fmt.Sprintf("%s AI project", e.catalog.IndustryLabel(n.Industry))
	}
	return "AI introduction project"
}

// systemRequirements synthesizes the integration section from the
// integration flag and the selected existing-system codes
func (e *Engine) systemRequirements(n questionnaire.Normalized) string {
	var parts []string
	if n.IntegrationNeeded {
		parts = append(parts, "The solution must integrate with existing systems.")
	}
	selected := make(map[string]bool, len(n.ExistingSystems))
	for _, code := range n.ExistingSystems {
		selected[code] = true
	}
	for _, code := range e.catalog.ExistingSystemOrder() {
		if !selected[code] {
			continue
		}
		if phrase, ok := e.catalog.ExistingSystemPhrase(code); ok {
			parts = append(parts, phrase)
		}
	}
	if len(parts) == 0 {
		return "No integration with existing systems is required."
	}
	return strings.Join(parts, " ")
}

// requiredAnswered reports whether every question the template marks
// required carries a non-default answer
func (e *Engine) requiredAnswered(n questionnaire.Normalized) bool {
	for _, id := range e.template.Required() {
		if !n.Answered[id] {
			return false
		}
	}
	return true
}
