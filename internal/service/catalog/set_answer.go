package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// SetQuestionAnswer replaces the answer schema of the question at input.Index.
func (s *Service) SetQuestionAnswer(ctx context.Context, input SetQuestionAnswerInput) error {
	input.Answer = QuestionInput{Answer: input.Answer}.sanitized().Answer
	if err := input.Validate(s.limits); err != nil {
		return err
	}

	var old domain.AnswerKind
	_, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		survey, err := findQuestion(c, input.SurveyID, input.Index)
		if err != nil {
			return err
		}
		old = survey.Questions[input.Index].Answer.Kind
		survey.Questions[input.Index].Answer = input.Answer
		return nil
	})
	if err != nil {
		return fmt.Errorf("set question answer: %w", err)
	}

	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeQuestion,
		EntityID:   questionRef(input.SurveyID, input.Index),
		Action:     domain.AuditActionUpdate,
		Changes: map[string]any{
			"answer":  map[string]any{"old": old.String(), "new": input.Answer.Kind.String()},
			"choices": map[string]any{"new": input.Answer.Choices},
		},
	})

	s.log.InfoContext(ctx, "question answer updated",
		slog.String("survey_id", input.SurveyID),
		slog.Int("index", input.Index),
		slog.String("kind", input.Answer.Kind.String()),
	)

	return nil
}
