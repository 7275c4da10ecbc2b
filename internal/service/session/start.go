package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

// Start begins a survey for the caller and returns the first question. An
// empty surveyID means the active survey. Only operators may start a survey
// that is not active. A session already in progress is discarded.
func (s *Service) Start(ctx context.Context, surveyID string) (*Prompt, error) {
	userID, unlock, err := s.lockUser(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	survey, err := s.resolve(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if len(survey.Questions) == 0 {
		return nil, domain.NewValidationError("survey", "has no questions")
	}

	done, err := s.responses.HasCompleted(ctx, userID, survey.ID)
	if err != nil {
		return nil, fmt.Errorf("check completed: %w", err)
	}
	if done {
		return nil, domain.ErrDuplicateAttempt
	}

	sess := s.newSession(userID, ctxutil.UsernameFromCtx(ctx), survey)
	if err := fire(ctx, sess.machine, sess.askEvent()); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	replaced := s.get(userID) != nil
	s.put(userID, sess)
	metrics.SessionsStarted.Inc()

	s.log.InfoContext(ctx, "survey started",
		slog.Int64("user_id", userID),
		slog.String("survey_id", survey.ID),
		slog.Bool("replaced", replaced),
	)

	return sess.prompt(), nil
}

func (s *Service) resolve(ctx context.Context, surveyID string) (*domain.Survey, error) {
	active, err := s.surveys.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active survey: %w", err)
	}

	if surveyID == "" {
		if active == nil {
			return nil, fmt.Errorf("no active survey: %w", domain.ErrNotFound)
		}
		return active, nil
	}

	survey, err := s.surveys.Get(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	if !ctxutil.IsAdminCtx(ctx) && (active == nil || active.ID != survey.ID) {
		return nil, domain.ErrSurveyInactive
	}
	return survey, nil
}
