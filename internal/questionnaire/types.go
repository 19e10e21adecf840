package questionnaire

import "encoding/json"

// Kind identifies the answer shape a question expects
type Kind string

const (
	KindSingle   Kind = "single"
	KindMultiple Kind = "multiple"
	KindYesNo    Kind = "yesno"
	KindText     Kind = "text"
	KindSlider   Kind = "slider"
)

// Option is one selectable choice of a single/multiple question
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// ChoiceSpec is the payload for single and multiple questions.
// Options may be empty when the UI fills them dynamically (use_case).
type ChoiceSpec struct {
	Options []Option `json:"options" yaml:"options"`
}

// SliderSpec is the payload for slider questions
type SliderSpec struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// TextSpec is the payload for free-text questions
type TextSpec struct {
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Question is a single questionnaire entry. Exactly one payload field
// is set, matching Kind; yesno questions carry no payload.
type Question struct {
	ID       string      `json:"id" yaml:"id"`
	Text     string      `json:"text" yaml:"text"`
	Kind     Kind        `json:"type" yaml:"type"`
	Required bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Choice   *ChoiceSpec `json:"choice,omitempty" yaml:"choice,omitempty"`
	Slider   *SliderSpec `json:"slider,omitempty" yaml:"slider,omitempty"`
	FreeText *TextSpec   `json:"text_input,omitempty" yaml:"text_input,omitempty"`
}

// Template is an ordered questionnaire definition
type Template struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Required returns the IDs of questions marked required, in template order
func (t Template) Required() []string {
	var ids []string
	for _, q := range t.Questions {
		if q.Required {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// Question returns the question with the given ID, if present
func (t Template) Question(id string) (Question, bool) {
	for _, q := range t.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Answer pairs a question ID with its raw value. The value shape
// depends on the owning question's kind and is decoded during
// normalization; undecodable values are treated as unanswered.
type Answer struct {
	QuestionID string          `json:"questionId"`
	Value      json.RawMessage `json:"value"`
}

// Normalized is the fully defaulted projection of an answer sequence.
// Every field has a defined value even when the corresponding question
// was never answered, so scoring code never sees a missing input.
type Normalized struct {
	Industry             string
	UseCase              string
	PainPoints           []string
	Description          string
	DataAvailability     string
	IntegrationNeeded    bool
	ExistingSystems      []string
	ITStaffing           string
	BudgetMidpoint       float64
	Timeline             string
	SecurityRequirements []string

	// Answered records question IDs that carried a non-default value
	Answered map[string]bool
}
