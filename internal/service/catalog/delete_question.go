package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// DeleteQuestion removes the question at index. A survey never drops below
// the minimum question count.
func (s *Service) DeleteQuestion(ctx context.Context, surveyID string, index int) error {
	var old string
	_, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		survey, err := findQuestion(c, surveyID, index)
		if err != nil {
			return err
		}
		if len(survey.Questions) <= s.limits.MinQuestions {
			return domain.NewValidationError("questions", fmt.Sprintf("at least %d required", s.limits.MinQuestions))
		}
		old = survey.Questions[index].Text
		survey.Questions = append(survey.Questions[:index], survey.Questions[index+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeQuestion,
		EntityID:   questionRef(surveyID, index),
		Action:     domain.AuditActionDelete,
		Changes: map[string]any{
			"text": map[string]any{"old": old},
		},
	})

	s.log.InfoContext(ctx, "question deleted",
		slog.String("survey_id", surveyID),
		slog.Int("index", index),
	)

	return nil
}
