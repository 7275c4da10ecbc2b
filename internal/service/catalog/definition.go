package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/surveybot/internal/domain"
	"gopkg.in/yaml.v3"
)

// definition is the YAML form of a survey:
//
//	name: Feedback
//	description: Quarterly team feedback
//	questions:
//	  - Do you like the office?
//	  - text: Pick a day
//	    type: choices
//	    choices: [Mon, Fri]
type definition struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Questions   []questionDefinition `yaml:"questions"`
}

type questionDefinition struct {
	Text    string   `yaml:"text"`
	Type    string   `yaml:"type"`
	Choices []string `yaml:"choices"`
}

// UnmarshalYAML accepts a bare string as a Yes/No question.
func (q *questionDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		q.Text = value.Value
		return nil
	}
	type plain questionDefinition
	return value.Decode((*plain)(q))
}

// ParseDefinitionYAML reads a survey definition document. Limits are not
// checked here; Create validates the result.
func ParseDefinitionYAML(r io.Reader) (CreateSurveyInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return CreateSurveyInput{}, domain.NewValidationError("definition", "empty document")
		}
		return CreateSurveyInput{}, domain.NewValidationError("definition", err.Error())
	}

	input := CreateSurveyInput{
		Name:        def.Name,
		Description: def.Description,
		Questions:   make([]QuestionInput, len(def.Questions)),
	}
	for n, q := range def.Questions {
		kind := domain.AnswerKind(q.Type)
		if q.Type == "" {
			kind = domain.AnswerBinary
			if len(q.Choices) > 0 {
				kind = domain.AnswerChoices
			}
		}
		if !kind.IsValid() {
			return CreateSurveyInput{}, domain.NewValidationError(
				fmt.Sprintf("questions[%d].type", n), fmt.Sprintf("unknown answer type %q", q.Type))
		}
		input.Questions[n] = QuestionInput{
			Text:   q.Text,
			Answer: domain.AnswerSchema{Kind: kind, Choices: q.Choices},
		}
	}
	return input, nil
}
