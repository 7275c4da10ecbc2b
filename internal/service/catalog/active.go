package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// GetActive returns the active survey, or nil if none is active.
func (s *Service) GetActive(ctx context.Context) (*domain.Survey, error) {
	cat, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat.Active(), nil
}

// SetActive makes the survey with the given id active. An empty id clears
// the pointer.
func (s *Service) SetActive(ctx context.Context, id string) error {
	var previous string
	_, err := s.catalog.Update(ctx, func(c *domain.Catalog) error {
		if id != "" {
			if survey, _ := c.Find(id); survey == nil {
				return domain.ErrNotFound
			}
		}
		previous = c.ActiveID
		c.ActiveID = id
		return nil
	})
	if err != nil {
		return fmt.Errorf("set active survey: %w", err)
	}

	if previous != id {
		s.activeChanged(ctx, previous, id)
	}

	s.log.InfoContext(ctx, "active survey changed",
		slog.String("old", previous),
		slog.String("new", id),
	)

	return nil
}
