// Package engine implements the recommendation core: cost estimation,
// vendor matching, and specification generation over normalized
// questionnaire answers. All methods are pure functions of the
// immutable catalog and template, so an Engine is safe for concurrent
// use by any number of requests.
package engine

import (
	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

// Engine bundles the reference data the scoring passes consult
type Engine struct {
	catalog  *catalog.Catalog
	template questionnaire.Template
}

// New creates an engine over the given catalog and template
func New(c *catalog.Catalog, t questionnaire.Template) *Engine {
	return &Engine{catalog: c, template: t}
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Template returns the engine's questionnaire template
func (e *Engine) Template() questionnaire.Template {
	return e.template
}

// Normalize projects raw answers onto the engine's template
func (e *Engine) Normalize(answers []questionnaire.Answer) questionnaire.Normalized {
	return questionnaire.Normalize(answers, e.template)
}
