package questionnaire

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed template.yaml
var defaultTemplate []byte

// DefaultTemplate returns the embedded questionnaire template
func DefaultTemplate() Template {
	t, err := parseTemplate(defaultTemplate, "template.yaml")
	if err != nil {
		// The embedded template is validated by tests; a parse failure
		// here is a build defect.
		panic(fmt.Sprintf("embedded template invalid: %v", err))
	}
	return t
}

// LoadTemplate reads and validates a questionnaire template from a
// YAML or JSON file, selected by extension
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template: %w", err)
	}
	return parseTemplate(data, path)
}

func parseTemplate(data []byte, path string) (Template, error) {
	var t Template
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &t); err != nil {
			return Template{}, fmt.Errorf("failed to parse template: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &t); err != nil {
			return Template{}, fmt.Errorf("failed to parse template: %w", err)
		}
	}
	if err := validateTemplate(t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// validateTemplate checks that every question carries exactly the
// payload its kind requires
func validateTemplate(t Template) error {
	seen := make(map[string]bool)
	for i, q := range t.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %d: missing id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true

		switch q.Kind {
		case KindSingle, KindMultiple:
			if q.Choice == nil {
				return fmt.Errorf("question %q: %s question requires choice options", q.ID, q.Kind)
			}
			if q.Slider != nil || q.FreeText != nil {
				return fmt.Errorf("question %q: unexpected payload for %s question", q.ID, q.Kind)
			}
		case KindSlider:
			if q.Slider == nil {
				return fmt.Errorf("question %q: slider question requires bounds", q.ID)
			}
			if q.Slider.Min >= q.Slider.Max {
				return fmt.Errorf("question %q: slider min must be below max", q.ID)
			}
			if q.Choice != nil || q.FreeText != nil {
				return fmt.Errorf("question %q: unexpected payload for slider question", q.ID)
			}
		case KindText:
			if q.Choice != nil || q.Slider != nil {
				return fmt.Errorf("question %q: unexpected payload for text question", q.ID)
			}
		case KindYesNo:
			if q.Choice != nil || q.Slider != nil || q.FreeText != nil {
				return fmt.Errorf("question %q: yesno question carries no payload", q.ID)
			}
		default:
			return fmt.Errorf("question %q: unknown question type %q", q.ID, q.Kind)
		}
	}
	return nil
}
