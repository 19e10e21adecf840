package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

// fixClock pins the engine clock for the duration of a test
func fixClock(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = orig })
	return fixed
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	fixClock(t)
	return New(catalog.Default(), questionnaire.DefaultTemplate())
}

func answer(id, value string) questionnaire.Answer {
	return questionnaire.Answer{QuestionID: id, Value: json.RawMessage(value)}
}

// manufacturingAnswers is the fully answered reference scenario:
// visual inspection for a manufacturer with digital data, no
// integration, a 4M yen budget, and a three-month timeline.
func manufacturingAnswers() []questionnaire.Answer {
	return []questionnaire.Answer{
		answer(questionnaire.QIndustry, `"manufacturing"`),
		answer(questionnaire.QUseCase, `"外観検査自動化"`),
		answer(questionnaire.QPainPoints, `["quality","speed"]`),
		answer(questionnaire.QDataAvailability, `"yes_digital"`),
		answer(questionnaire.QIntegrationNeeded, `false`),
		answer(questionnaire.QBudget, `4000000`),
		answer(questionnaire.QTimeline, `"3months"`),
		answer(questionnaire.QSecurityRequirements, `["none"]`),
	}
}
