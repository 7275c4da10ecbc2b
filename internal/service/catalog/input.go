package catalog

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/surveybot/internal/config"
	"github.com/heartmarshall/surveybot/internal/domain"
)

// QuestionInput is a question as submitted by an operator. A zero Answer
// means the Yes/No schema.
type QuestionInput struct {
	Text   string
	Answer domain.AnswerSchema
}

// CreateSurveyInput holds the parameters for creating a survey.
type CreateSurveyInput struct {
	Name        string
	Description string
	Questions   []QuestionInput
}

func (i CreateSurveyInput) sanitized() CreateSurveyInput {
	out := CreateSurveyInput{
		Name:        domain.SanitizeInput(i.Name, 0),
		Description: domain.SanitizeInput(i.Description, 0),
		Questions:   make([]QuestionInput, len(i.Questions)),
	}
	for n, q := range i.Questions {
		out.Questions[n] = q.sanitized()
	}
	return out
}

// Validate checks all fields against the limits and collects all errors.
func (i CreateSurveyInput) Validate(l config.SurveyConfig) error {
	var errs []domain.FieldError

	errs = append(errs, lengthErrors("name", i.Name, l.MinNameLength, l.MaxNameLength)...)
	errs = append(errs, lengthErrors("description", i.Description, l.MinDescriptionLength, l.MaxDescriptionLength)...)

	if len(i.Questions) < l.MinQuestions {
		errs = append(errs, domain.FieldError{Field: "questions", Message: fmt.Sprintf("at least %d required", l.MinQuestions)})
	}
	if len(i.Questions) > l.MaxQuestions {
		errs = append(errs, domain.FieldError{Field: "questions", Message: fmt.Sprintf("max %d questions", l.MaxQuestions)})
	}
	for n, q := range i.Questions {
		errs = append(errs, q.validate(fmt.Sprintf("questions[%d]", n), l)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (q QuestionInput) sanitized() QuestionInput {
	out := QuestionInput{
		Text:   domain.SanitizeInput(q.Text, 0),
		Answer: domain.AnswerSchema{Kind: q.Answer.Kind},
	}
	if out.Answer.Kind == "" {
		out.Answer.Kind = domain.AnswerBinary
	}
	if q.Answer.Choices != nil {
		out.Answer.Choices = make([]string, len(q.Answer.Choices))
		for n, c := range q.Answer.Choices {
			out.Answer.Choices[n] = domain.SanitizeInput(c, 0)
		}
	}
	return out
}

func (q QuestionInput) validate(field string, l config.SurveyConfig) []domain.FieldError {
	var errs []domain.FieldError
	if q.Text == "" {
		errs = append(errs, domain.FieldError{Field: field + ".text", Message: "required"})
	} else if utf8.RuneCountInString(q.Text) > l.MaxQuestionLength {
		errs = append(errs, domain.FieldError{Field: field + ".text", Message: fmt.Sprintf("max %d characters", l.MaxQuestionLength)})
	}
	return append(errs, validateSchema(field+".answer", q.Answer, l)...)
}

func validateSchema(field string, s domain.AnswerSchema, l config.SurveyConfig) []domain.FieldError {
	if !s.Kind.IsValid() {
		return []domain.FieldError{{Field: field + ".type", Message: "must be binary, choices or free_text"}}
	}
	if s.Kind != domain.AnswerChoices {
		if len(s.Choices) > 0 {
			return []domain.FieldError{{Field: field + ".choices", Message: "only allowed for choices"}}
		}
		return nil
	}

	var errs []domain.FieldError
	if len(s.Choices) == 0 {
		errs = append(errs, domain.FieldError{Field: field + ".choices", Message: "at least 1 required"})
	}
	if len(s.Choices) > l.MaxChoices {
		errs = append(errs, domain.FieldError{Field: field + ".choices", Message: fmt.Sprintf("max %d choices", l.MaxChoices)})
	}
	for n, c := range s.Choices {
		f := fmt.Sprintf("%s.choices[%d]", field, n)
		switch {
		case c == "":
			errs = append(errs, domain.FieldError{Field: f, Message: "required"})
		case c == domain.FreeTextOption:
			errs = append(errs, domain.FieldError{Field: f, Message: "reserved label"})
		case slices.Index(s.Choices, c) < n:
			errs = append(errs, domain.FieldError{Field: f, Message: "duplicate"})
		}
	}
	return errs
}

func lengthErrors(field, value string, minLen, maxLen int) []domain.FieldError {
	n := utf8.RuneCountInString(value)
	switch {
	case strings.TrimSpace(value) == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case n < minLen:
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("min %d characters", minLen)}}
	case n > maxLen:
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)}}
	}
	return nil
}

// UpdateQuestionInput replaces the text of one question.
type UpdateQuestionInput struct {
	SurveyID string
	Index    int
	Text     string
}

// Validate checks all fields and collects all errors.
func (i UpdateQuestionInput) Validate(l config.SurveyConfig) error {
	var errs []domain.FieldError

	if i.SurveyID == "" {
		errs = append(errs, domain.FieldError{Field: "survey_id", Message: "required"})
	}
	if i.Index < 0 {
		errs = append(errs, domain.FieldError{Field: "index", Message: "must be non-negative"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(i.Text) > l.MaxQuestionLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", l.MaxQuestionLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddQuestionInput appends a question to a survey.
type AddQuestionInput struct {
	SurveyID string
	Text     string
	Answer   domain.AnswerSchema
}

// Validate checks all fields and collects all errors.
func (i AddQuestionInput) Validate(l config.SurveyConfig) error {
	var errs []domain.FieldError

	if i.SurveyID == "" {
		errs = append(errs, domain.FieldError{Field: "survey_id", Message: "required"})
	}
	errs = append(errs, QuestionInput{Text: i.Text, Answer: i.Answer}.validate("question", l)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetQuestionAnswerInput replaces the answer schema of one question.
type SetQuestionAnswerInput struct {
	SurveyID string
	Index    int
	Answer   domain.AnswerSchema
}

// Validate checks all fields and collects all errors.
func (i SetQuestionAnswerInput) Validate(l config.SurveyConfig) error {
	var errs []domain.FieldError

	if i.SurveyID == "" {
		errs = append(errs, domain.FieldError{Field: "survey_id", Message: "required"})
	}
	if i.Index < 0 {
		errs = append(errs, domain.FieldError{Field: "index", Message: "must be non-negative"})
	}
	errs = append(errs, validateSchema("answer", i.Answer, l)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
