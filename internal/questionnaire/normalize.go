package questionnaire

import (
	"encoding/json"
	"strings"
)

// Question IDs the normalizer projects into Normalized fields.
// Template questions with other IDs still participate in the
// Answered bookkeeping, so new questions degrade gracefully.
const (
	QIndustry             = "industry"
	QUseCase              = "use_case"
	QPainPoints           = "pain_points"
	QProblemDescription   = "problem_description"
	QDataAvailability     = "data_availability"
	QIntegrationNeeded    = "integration_needed"
	QExistingSystems      = "existing_systems"
	QITStaffing           = "it_staffing"
	QBudget               = "budget"
	QTimeline             = "timeline"
	QSecurityRequirements = "security_requirements"
)

// Normalize projects a raw answer sequence onto the template,
// defaulting every unanswered question: single/multiple to an empty
// selection, text to "", yesno to false, slider to the midpoint of
// its bounds. Answers for unknown question IDs and values that do not
// decode to the question's declared shape are ignored. Never fails.
func Normalize(answers []Answer, t Template) Normalized {
	raw := make(map[string]json.RawMessage, len(answers))
	for _, a := range answers {
		if _, ok := t.Question(a.QuestionID); ok {
			raw[a.QuestionID] = a.Value
		}
	}

	n := Normalized{Answered: make(map[string]bool)}
	for _, q := range t.Questions {
		value := raw[q.ID]
		switch q.Kind {
		case KindSingle:
			s := decodeString(value)
			if s != "" {
				n.Answered[q.ID] = true
			}
			n.setString(q.ID, s)
		case KindText:
			s := strings.TrimSpace(decodeString(value))
			if s != "" {
				n.Answered[q.ID] = true
			}
			n.setString(q.ID, s)
		case KindMultiple:
			list := decodeStringList(value)
			if len(list) > 0 {
				n.Answered[q.ID] = true
			}
			n.setList(q.ID, list)
		case KindYesNo:
			b := decodeBool(value)
			if b {
				n.Answered[q.ID] = true
			}
			if q.ID == QIntegrationNeeded {
				n.IntegrationNeeded = b
			}
		case KindSlider:
			mid := (q.Slider.Min + q.Slider.Max) / 2
			f, ok := decodeNumber(value)
			if !ok {
				f = mid
			} else if f != mid {
				n.Answered[q.ID] = true
			}
			if q.ID == QBudget {
				n.BudgetMidpoint = f
			}
		}
	}
	return n
}

func (n *Normalized) setString(id, v string) {
	switch id {
	case QIndustry:
		n.Industry = v
	case QUseCase:
		n.UseCase = v
	case QProblemDescription:
		n.Description = v
	case QDataAvailability:
		n.DataAvailability = v
	case QITStaffing:
		n.ITStaffing = v
	case QTimeline:
		n.Timeline = v
	}
}

func (n *Normalized) setList(id string, v []string) {
	switch id {
	case QPainPoints:
		n.PainPoints = v
	case QExistingSystems:
		n.ExistingSystems = v
	case QSecurityRequirements:
		n.SecurityRequirements = v
	}
}

func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func decodeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func decodeBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}
