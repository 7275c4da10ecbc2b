package responses

import (
	"context"
	"fmt"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// ListRespondents maps the id of every user who answered the survey to their
// username, or to domain.NoUsername when they have none.
func (s *Service) ListRespondents(ctx context.Context, surveyID string) (map[int64]string, error) {
	records, err := s.surveyRecords(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("list respondents: %w", err)
	}

	out := make(map[int64]string, len(records))
	for _, rec := range records {
		out[rec.UserID] = rec.DisplayUsername()
	}
	return out, nil
}

// UserAnswers returns the answers one user gave to a survey.
func (s *Service) UserAnswers(ctx context.Context, userID int64, surveyID string) ([]domain.Answer, error) {
	records, err := s.surveyRecords(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("user answers: %w", err)
	}

	for _, rec := range records {
		if rec.UserID == userID {
			return rec.Answers, nil
		}
	}
	return nil, fmt.Errorf("user %d answers for %q: %w", userID, surveyID, domain.ErrNotFound)
}
