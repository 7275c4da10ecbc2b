package session

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
)

// Choose handles a button press. The free-text option switches the current
// question to text input; any other label must be one of the question's
// options and is recorded as the answer.
func (s *Service) Choose(ctx context.Context, label string) (*Step, error) {
	userID, unlock, err := s.lockUser(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sess := s.get(userID)
	if sess == nil {
		return nil, ErrNoSession
	}
	if sess.State() != StateAwaitingChoice {
		return nil, domain.NewValidationError("answer", "text answer expected")
	}

	q := sess.question()
	if !q.Answer.Accepts(label) {
		return nil, domain.NewValidationError("answer", "unknown option")
	}

	if label == domain.FreeTextOption {
		if err := fire(ctx, sess.machine, eventFreeText); err != nil {
			return nil, fmt.Errorf("choose: %w", err)
		}
		return &Step{Prompt: sess.prompt()}, nil
	}

	return s.advance(ctx, sess, domain.Answer{Question: q.Text, Text: label})
}

// SubmitText handles a typed answer. The text is sanitized and must be
// non-empty and within the answer length limit; otherwise the session is
// left as it was.
func (s *Service) SubmitText(ctx context.Context, text string) (*Step, error) {
	userID, unlock, err := s.lockUser(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sess := s.get(userID)
	if sess == nil {
		return nil, ErrNoSession
	}
	if sess.State() != StateAwaitingFreeText {
		return nil, domain.NewValidationError("answer", "choose one of the options")
	}

	text = domain.SanitizeInput(text, 0)
	if text == "" {
		return nil, domain.NewValidationError("answer", "required")
	}
	if utf8.RuneCountInString(text) > s.limits.MaxAnswerLength {
		return nil, domain.NewValidationError("answer", fmt.Sprintf("max %d characters", s.limits.MaxAnswerLength))
	}

	return s.advance(ctx, sess, domain.Answer{Question: sess.question().Text, Text: text})
}

// advance records answer and moves to the next question. After the last
// question the record is persisted; if that fails the session is unchanged
// and the user may resend the answer.
func (s *Service) advance(ctx context.Context, sess *Session, answer domain.Answer) (*Step, error) {
	if sess.last() {
		rec := sess.record(answer)
		if err := s.responses.Append(ctx, rec); err != nil {
			s.log.WarnContext(ctx, "save responses failed",
				slog.Int64("user_id", sess.UserID),
				slog.String("survey_id", sess.SurveyID()),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("save responses: %w", err)
		}
		if err := fire(ctx, sess.machine, eventFinish); err != nil {
			return nil, fmt.Errorf("finish: %w", err)
		}
		s.put(sess.UserID, nil)
		metrics.SessionsCompleted.Inc()

		s.log.InfoContext(ctx, "survey completed",
			slog.Int64("user_id", sess.UserID),
			slog.String("survey_id", sess.SurveyID()),
			slog.Int("answers", len(rec.Answers)),
		)
		return &Step{Completed: true}, nil
	}

	sess.Answers = append(sess.Answers, answer)
	sess.QuestionIndex++
	if err := fire(ctx, sess.machine, sess.askEvent()); err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}
	return &Step{Prompt: sess.prompt()}, nil
}
