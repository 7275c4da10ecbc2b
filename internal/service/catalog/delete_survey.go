package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Delete removes a survey. Deleting the active survey leaves no survey
// active. Recorded responses are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	var (
		name      string
		wasActive bool
	)
	_, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		survey, _ := c.Find(id)
		if survey == nil {
			return domain.ErrNotFound
		}
		name = survey.Name
		wasActive = c.ActiveID == id
		c.Remove(id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}

	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeSurvey,
		EntityID:   id,
		Action:     domain.AuditActionDelete,
		Changes: map[string]any{
			"name": map[string]any{"old": name},
		},
	})
	if wasActive {
		s.activeChanged(ctx, id, "")
	}

	s.log.InfoContext(ctx, "survey deleted",
		slog.String("survey_id", id),
		slog.String("name", name),
		slog.Bool("was_active", wasActive),
	)

	return nil
}
