package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Create validates and stores a new survey. If no survey is active the new
// one becomes active.
func (s *Service) Create(ctx context.Context, input CreateSurveyInput) (*domain.Survey, error) {
	input = input.sanitized()
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	survey := &domain.Survey{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Questions:   make([]domain.Question, len(input.Questions)),
		CreatedAt:   s.now().UTC(),
	}
	for n, q := range input.Questions {
		survey.Questions[n] = domain.Question{Text: q.Text, Answer: q.Answer}
	}

	var previous string
	cat, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		if len(c.Surveys) >= s.limits.MaxSurveys {
			return domain.NewValidationError("surveys", fmt.Sprintf("limit reached (max %d)", s.limits.MaxSurveys))
		}
		c.Surveys = append(c.Surveys, survey.Clone())
		if c.Active() == nil {
			previous = c.ActiveID
			c.ActiveID = survey.ID
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}

	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeSurvey,
		EntityID:   survey.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"name":      map[string]any{"new": survey.Name},
			"questions": map[string]any{"new": len(survey.Questions)},
		},
	})
	activated := cat.ActiveID == survey.ID
	if activated {
		s.activeChanged(ctx, previous, survey.ID)
	}

	s.log.InfoContext(ctx, "survey created",
		slog.String("survey_id", survey.ID),
		slog.String("name", survey.Name),
		slog.Int("questions", len(survey.Questions)),
		slog.Bool("activated", activated),
	)

	return survey, nil
}
