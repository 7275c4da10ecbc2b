package bot

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/service/session"
	"github.com/heartmarshall/surveybot/internal/transport/middleware"
	"github.com/heartmarshall/surveybot/pkg/keylock"
)

type sessionService interface {
	Start(ctx context.Context, surveyID string) (*session.Prompt, error)
	Choose(ctx context.Context, label string) (*session.Step, error)
	SubmitText(ctx context.Context, text string) (*session.Step, error)
	Cancel(ctx context.Context) bool
}

type catalogService interface {
	List(ctx context.Context) ([]*domain.Survey, error)
	GetActive(ctx context.Context) (*domain.Survey, error)
}

type statisticsService interface {
	Statistics(ctx context.Context, surveyID string) (*domain.SurveyStatistics, error)
}

// Dispatcher routes user actions through the middleware chain into the
// session machine and reports results back through the gateway. Actions of
// one user are handled one at a time, in arrival order.
type Dispatcher struct {
	gateway  Gateway
	sessions sessionService
	surveys  catalogService
	stats    statisticsService
	log      *slog.Logger

	users   *keylock.Locker[int64]
	handler middleware.Handler
}

// NewDispatcher creates a Dispatcher. Middleware run in the order given,
// outermost first.
func NewDispatcher(
	log *slog.Logger,
	gateway Gateway,
	sessions sessionService,
	surveys catalogService,
	stats statisticsService,
	mws ...middleware.Middleware,
) *Dispatcher {
	d := &Dispatcher{
		gateway:  gateway,
		sessions: sessions,
		surveys:  surveys,
		stats:    stats,
		log:      log.With("transport", "bot"),
		users:    keylock.New[int64](),
	}
	d.handler = middleware.Chain(mws...)(middleware.HandlerFunc(d.handle))
	return d
}

// OnUserAction handles one action. A failed action is reported to the user
// as a short message and the error is returned.
func (d *Dispatcher) OnUserAction(ctx context.Context, action domain.Action) error {
	unlock := d.users.Lock(action.UserID)
	defer unlock()

	err := d.handler.Handle(ctx, action)
	if err == nil {
		return nil
	}

	if deliverErr := d.gateway.DeliverText(ctx, action.UserID, userMessage(err)); deliverErr != nil {
		d.log.WarnContext(ctx, "deliver error message failed",
			slog.Int64("user_id", action.UserID),
			slog.String("error", deliverErr.Error()),
		)
	}
	return err
}

func (d *Dispatcher) handle(ctx context.Context, action domain.Action) error {
	switch action.Kind {
	case domain.ActionStart:
		prompt, err := d.sessions.Start(ctx, action.Payload)
		if err != nil {
			return err
		}
		if err := d.gateway.DeliverText(ctx, action.UserID, introText(prompt)); err != nil {
			return err
		}
		return d.deliverPrompt(ctx, action.UserID, prompt)

	case domain.ActionChoose:
		step, err := d.sessions.Choose(ctx, action.Payload)
		if err != nil {
			return err
		}
		return d.deliverStep(ctx, action.UserID, step)

	case domain.ActionText:
		step, err := d.sessions.SubmitText(ctx, action.Payload)
		if err != nil {
			return err
		}
		return d.deliverStep(ctx, action.UserID, step)

	case domain.ActionCancel:
		text := msgNothingToCancel
		if d.sessions.Cancel(ctx) {
			text = msgCancelled
		}
		return d.gateway.DeliverText(ctx, action.UserID, text)

	case domain.ActionSurveys:
		surveys, err := d.surveys.List(ctx)
		if err != nil {
			return err
		}
		active, err := d.surveys.GetActive(ctx)
		if err != nil {
			return err
		}
		return d.gateway.DeliverText(ctx, action.UserID, surveyListText(surveys, active))

	case domain.ActionStats:
		surveyID := action.Payload
		if surveyID == "" {
			active, err := d.surveys.GetActive(ctx)
			if err != nil {
				return err
			}
			if active == nil {
				return d.gateway.DeliverText(ctx, action.UserID, msgNoActiveSurvey)
			}
			surveyID = active.ID
		}
		stats, err := d.stats.Statistics(ctx, surveyID)
		if err != nil {
			return err
		}
		return d.gateway.DeliverText(ctx, action.UserID, statisticsText(stats))
	}

	return domain.NewValidationError("action", "unknown action "+action.Kind.String())
}

func (d *Dispatcher) deliverStep(ctx context.Context, userID int64, step *session.Step) error {
	if step.Completed {
		return d.gateway.DeliverText(ctx, userID, msgCompleted)
	}
	return d.deliverPrompt(ctx, userID, step.Prompt)
}

func (d *Dispatcher) deliverPrompt(ctx context.Context, userID int64, p *session.Prompt) error {
	return d.gateway.DeliverQuestion(ctx, userID, promptText(p), p.Options)
}

// Classify maps actions to rate limiter classes. Answers inside a running
// survey are not limited.
func Classify(action domain.Action) string {
	switch action.Kind {
	case domain.ActionChoose, domain.ActionText:
		return ""
	case domain.ActionStats:
		return "stats"
	default:
		return "command"
	}
}
