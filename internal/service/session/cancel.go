package session

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

// Cancel discards the caller's session without writing anything. Reports
// whether a session existed.
func (s *Service) Cancel(ctx context.Context) bool {
	userID, unlock, err := s.lockUser(ctx)
	if err != nil {
		return false
	}
	defer unlock()

	sess := s.get(userID)
	if sess == nil {
		return false
	}
	s.put(userID, nil)

	s.log.InfoContext(ctx, "survey cancelled",
		slog.Int64("user_id", userID),
		slog.String("survey_id", sess.SurveyID()),
		slog.Int("answered", sess.QuestionIndex),
	)
	return true
}

// Current returns the pending question of the caller's session.
func (s *Service) Current(ctx context.Context) (*Prompt, error) {
	userID, unlock, err := s.lockUser(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sess := s.get(userID)
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess.prompt(), nil
}

// Active reports whether the caller has a survey in progress.
func (s *Service) Active(ctx context.Context) bool {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false
	}
	return s.get(userID) != nil
}

// Len reports the number of sessions in progress.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
