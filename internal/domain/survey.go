package domain

import (
	"slices"
	"time"
)

// Fixed answer labels shown to users.
const (
	YesOption = "Да"
	NoOption  = "Нет"
	// FreeTextOption is the label that switches a question to raw text input.
	FreeTextOption = "Свой вариант"
)

// AnswerSchema describes how a question may be answered. Choices is only
// meaningful for AnswerChoices.
type AnswerSchema struct {
	Kind    AnswerKind
	Choices []string
}

// BinarySchema is the Yes/No schema.
func BinarySchema() AnswerSchema { return AnswerSchema{Kind: AnswerBinary} }

// ChoicesSchema is a custom list of labels.
func ChoicesSchema(labels ...string) AnswerSchema {
	return AnswerSchema{Kind: AnswerChoices, Choices: slices.Clone(labels)}
}

// FreeTextSchema accepts raw text only.
func FreeTextSchema() AnswerSchema { return AnswerSchema{Kind: AnswerFreeText} }

// Options returns the button labels for the schema, including the free-text
// option. A free-text-only schema has no buttons.
func (s AnswerSchema) Options() []string {
	switch s.Kind {
	case AnswerBinary:
		return []string{YesOption, NoOption, FreeTextOption}
	case AnswerChoices:
		opts := make([]string, 0, len(s.Choices)+1)
		opts = append(opts, s.Choices...)
		return append(opts, FreeTextOption)
	default:
		return nil
	}
}

// TextOnly reports whether the schema skips buttons entirely.
func (s AnswerSchema) TextOnly() bool { return s.Kind == AnswerFreeText }

// Accepts reports whether label is one of the schema's buttons.
func (s AnswerSchema) Accepts(label string) bool {
	return slices.Contains(s.Options(), label)
}

// Question is a single survey question.
type Question struct {
	Text   string
	Answer AnswerSchema
}

// Survey is an operator-defined questionnaire.
type Survey struct {
	ID          string
	Name        string
	Description string
	Questions   []Question
	CreatedAt   time.Time
}

// Clone returns a deep copy of the survey.
func (s *Survey) Clone() *Survey {
	if s == nil {
		return nil
	}
	out := *s
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = Question{
			Text:   q.Text,
			Answer: AnswerSchema{Kind: q.Answer.Kind, Choices: slices.Clone(q.Answer.Choices)},
		}
	}
	return &out
}

// Catalog is the full persisted survey state: surveys in presentation order
// plus the single active survey pointer.
type Catalog struct {
	Surveys  []*Survey
	ActiveID string
}

// Find returns the survey with the given id and its position, or nil and -1.
func (c *Catalog) Find(id string) (*Survey, int) {
	for i, s := range c.Surveys {
		if s.ID == id {
			return s, i
		}
	}
	return nil, -1
}

// Remove deletes the survey with the given id. Removing the active survey
// clears the active pointer. Returns false if no such survey exists.
func (c *Catalog) Remove(id string) bool {
	_, idx := c.Find(id)
	if idx < 0 {
		return false
	}
	c.Surveys = slices.Delete(c.Surveys, idx, idx+1)
	if c.ActiveID == id {
		c.ActiveID = ""
	}
	return true
}

// Active returns the active survey, or nil if none is set or the pointer
// refers to a survey that no longer exists.
func (c *Catalog) Active() *Survey {
	if c.ActiveID == "" {
		return nil
	}
	s, _ := c.Find(c.ActiveID)
	return s
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{ActiveID: c.ActiveID, Surveys: make([]*Survey, len(c.Surveys))}
	for i, s := range c.Surveys {
		out.Surveys[i] = s.Clone()
	}
	return out
}
