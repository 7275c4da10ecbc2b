package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Get returns the survey with the given id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Survey, error) {
	cat, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	survey, _ := cat.Find(id)
	if survey == nil {
		return nil, fmt.Errorf("get survey %q: %w", id, domain.ErrNotFound)
	}
	return survey, nil
}

// List returns all surveys in presentation order.
func (s *Service) List(ctx context.Context) ([]*domain.Survey, error) {
	cat, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat.Surveys, nil
}
