package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// AddQuestion appends a question to the end of a survey.
func (s *Service) AddQuestion(ctx context.Context, input AddQuestionInput) error {
	q := QuestionInput{Text: input.Text, Answer: input.Answer}.sanitized()
	input.Text, input.Answer = q.Text, q.Answer
	if err := input.Validate(s.limits); err != nil {
		return err
	}

	var index int
	_, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		survey, _ := c.Find(input.SurveyID)
		if survey == nil {
			return domain.ErrNotFound
		}
		if len(survey.Questions) >= s.limits.MaxQuestions {
			return domain.NewValidationError("questions", fmt.Sprintf("max %d questions", s.limits.MaxQuestions))
		}
		index = len(survey.Questions)
		survey.Questions = append(survey.Questions, domain.Question{Text: q.Text, Answer: q.Answer})
		return nil
	})
	if err != nil {
		return fmt.Errorf("add question: %w", err)
	}

	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeQuestion,
		EntityID:   questionRef(input.SurveyID, index),
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"text":   map[string]any{"new": q.Text},
			"answer": map[string]any{"new": q.Answer.Kind.String()},
		},
	})

	s.log.InfoContext(ctx, "question added",
		slog.String("survey_id", input.SurveyID),
		slog.Int("index", index),
	)

	return nil
}
