package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// UpdateQuestion replaces the text of the question at input.Index.
func (s *Service) UpdateQuestion(ctx context.Context, input UpdateQuestionInput) error {
	input.Text = domain.SanitizeInput(input.Text, 0)
	if err := input.Validate(s.limits); err != nil {
		return err
	}

	var old string
	_, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		survey, err := findQuestion(c, input.SurveyID, input.Index)
		if err != nil {
			return err
		}
		old = survey.Questions[input.Index].Text
		survey.Questions[input.Index].Text = input.Text
		return nil
	})
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}

	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeQuestion,
		EntityID:   questionRef(input.SurveyID, input.Index),
		Action:     domain.AuditActionUpdate,
		Changes: map[string]any{
			"text": map[string]any{"old": old, "new": input.Text},
		},
	})

	s.log.InfoContext(ctx, "question updated",
		slog.String("survey_id", input.SurveyID),
		slog.Int("index", input.Index),
	)

	return nil
}

func questionRef(surveyID string, index int) string {
	return fmt.Sprintf("%s#%d", surveyID, index)
}
