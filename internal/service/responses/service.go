package responses

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/surveybot/internal/domain"
)

type responseLog interface {
	List(ctx context.Context) ([]domain.ResponseRecord, error)
}

type surveyCatalog interface {
	Get(ctx context.Context, id string) (*domain.Survey, error)
}

type fileWriter interface {
	Write(ctx context.Context, path, content string) error
}

// Service answers operator queries over the response log.
type Service struct {
	log       *slog.Logger
	responses responseLog
	surveys   surveyCatalog
	files     fileWriter
	exportDir string
	now       func() time.Time
}

// NewService creates a new Responses service. Exports are written to exportDir.
func NewService(
	log *slog.Logger,
	responses responseLog,
	surveys surveyCatalog,
	files fileWriter,
	exportDir string,
) *Service {
	return &Service{
		log:       log.With("service", "responses"),
		responses: responses,
		surveys:   surveys,
		files:     files,
		exportDir: exportDir,
		now:       time.Now,
	}
}

// latestPerUser reduces the records of one survey to one per user, keeping
// the first completed record or, failing that, the most recent partial one.
// Users are returned in order of first appearance.
func latestPerUser(records []domain.ResponseRecord, surveyID string) []domain.ResponseRecord {
	index := make(map[int64]int)
	var out []domain.ResponseRecord
	for _, rec := range records {
		if rec.SurveyID != surveyID {
			continue
		}
		i, seen := index[rec.UserID]
		if !seen {
			index[rec.UserID] = len(out)
			out = append(out, rec)
			continue
		}
		if !out[i].Completed {
			out[i] = rec
		}
	}
	return out
}

func (s *Service) surveyRecords(ctx context.Context, surveyID string) ([]domain.ResponseRecord, error) {
	all, err := s.responses.List(ctx)
	if err != nil {
		return nil, err
	}
	return latestPerUser(all, surveyID), nil
}
