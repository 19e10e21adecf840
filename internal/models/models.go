package models

import (
	"github.com/aladdin-ai/aladdin/internal/engine"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

// AnswersRequest carries a session's answer set to the engine endpoints
type AnswersRequest struct {
	Answers []questionnaire.Answer `json:"answers"`
}

// InfoResponse describes the running server
type InfoResponse struct {
	Version       string `json:"version"`
	VendorCount   int    `json:"vendor_count"`
	CatalogSource string `json:"catalog_source"`
	QuestionCount int    `json:"question_count"`
}

// SpecificationResponse bundles the generated document with the
// estimate and matches it was assembled from
type SpecificationResponse struct {
	Spec     engine.GeneratedSpec `json:"spec"`
	Estimate engine.CostEstimate  `json:"estimate"`
	Matches  []engine.VendorMatch `json:"matches"`
}
