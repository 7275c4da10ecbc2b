package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/surveybot/internal/config"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

type catalogRepo interface {
	Load(ctx context.Context) (*domain.Catalog, error)
	Update(ctx context.Context, fn func(c *domain.Catalog) error) (*domain.Catalog, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Service manages survey definitions and the active survey pointer.
type Service struct {
	catalog catalogRepo
	audit   auditLogger
	limits  config.SurveyConfig
	log     *slog.Logger

	newID func() string
	now   func() time.Time
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	catalog catalogRepo,
	audit auditLogger,
	limits config.SurveyConfig,
) *Service {
	return &Service{
		catalog: catalog,
		audit:   audit,
		limits:  limits,
		log:     log.With("service", "catalog"),
		newID:   func() string { return uuid.New().String() },
		now:     time.Now,
	}
}

// record writes an audit entry. The catalog change is already durable at this
// point, so a failed audit write is logged and swallowed.
func (s *Service) record(ctx context.Context, rec domain.AuditRecord) {
	rec.ActorID, _ = ctxutil.UserIDFromCtx(ctx)
	if err := s.audit.Log(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "audit log failed",
			slog.String("entity_type", rec.EntityType.String()),
			slog.String("entity_id", rec.EntityID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) activeChanged(ctx context.Context, oldID, newID string) {
	s.record(ctx, domain.AuditRecord{
		EntityType: domain.EntityTypeActive,
		EntityID:   newID,
		Action:     domain.AuditActionUpdate,
		Changes: map[string]any{
			"active": map[string]any{"old": oldID, "new": newID},
		},
	})
}

func findQuestion(c *domain.Catalog, surveyID string, index int) (*domain.Survey, error) {
	survey, _ := c.Find(surveyID)
	if survey == nil {
		return nil, domain.ErrNotFound
	}
	if index < 0 || index >= len(survey.Questions) {
		return nil, domain.NewValidationError("index", "out of range")
	}
	return survey, nil
}
