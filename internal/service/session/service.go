package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/surveybot/internal/config"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
	"github.com/heartmarshall/surveybot/pkg/keylock"
)

// ErrNoSession is returned when an answer arrives with no survey in progress.
var ErrNoSession = fmt.Errorf("no survey in progress: %w", domain.ErrNotFound)

type surveyCatalog interface {
	Get(ctx context.Context, id string) (*domain.Survey, error)
	GetActive(ctx context.Context) (*domain.Survey, error)
}

type responseLog interface {
	Append(ctx context.Context, rec domain.ResponseRecord) error
	HasCompleted(ctx context.Context, userID int64, surveyID string) (bool, error)
}

// Service drives users through surveys one question at a time. Sessions live
// in memory only and are lost on restart.
type Service struct {
	surveys   surveyCatalog
	responses responseLog
	limits    config.SurveyConfig
	log       *slog.Logger

	users    *keylock.Locker[int64]
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewService creates a new Session service.
func NewService(
	log *slog.Logger,
	surveys surveyCatalog,
	responses responseLog,
	limits config.SurveyConfig,
) *Service {
	return &Service{
		surveys:   surveys,
		responses: responses,
		limits:    limits,
		log:       log.With("service", "session"),
		users:     keylock.New[int64](),
		sessions:  make(map[int64]*Session),
	}
}

func (s *Service) get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

func (s *Service) put(userID int64, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		delete(s.sessions, userID)
		return
	}
	s.sessions[userID] = sess
}

// lockUser resolves the caller and serializes its operations.
func (s *Service) lockUser(ctx context.Context) (int64, func(), error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, nil, domain.ErrUnauthorized
	}
	return userID, s.users.Lock(userID), nil
}

func (s *Service) newSession(userID int64, username string, survey *domain.Survey) *Session {
	sess := &Session{
		UserID:   userID,
		Username: username,
		survey:   survey.Clone(),
	}
	sess.machine = newMachine(func(ctx context.Context, from, to string) {
		s.log.DebugContext(ctx, "session state",
			slog.Int64("user_id", userID),
			slog.String("survey_id", survey.ID),
			slog.String("from", from),
			slog.String("to", to),
		)
	})
	return sess
}
