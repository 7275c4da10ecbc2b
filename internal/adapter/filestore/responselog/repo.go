// Package responselog persists survey responses as human-readable blocks in
// a single append-only text file and reconstructs records from it.
package responselog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/surveybot/internal/adapter/filestore"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Repo provides response log persistence.
type Repo struct {
	store *filestore.Store
	path  string
	log   *slog.Logger
	group singleflight.Group

	// beforeParse runs inside the shared parse; tests use it to hold
	// concurrent readers.
	beforeParse func()
}

// New creates a response log repository for the file at path.
func New(store *filestore.Store, path string, log *slog.Logger) *Repo {
	return &Repo{store: store, path: path, log: log.With("repo", "responselog")}
}

// Append writes rec at the end of the log. The log is re-read under its lock
// first; a second completed record for the same (user, survey) pair is
// rejected with domain.ErrDuplicateAttempt.
func (r *Repo) Append(ctx context.Context, rec domain.ResponseRecord) error {
	err := r.store.RunLocked(ctx, []string{r.path}, func(tx *filestore.Tx) error {
		text, err := tx.Read(r.path)
		if err != nil {
			return err
		}
		if rec.Completed && hasCompleted(r.parse(ctx, text), rec.UserID, rec.SurveyID) {
			return domain.ErrDuplicateAttempt
		}
		if err := tx.Append(r.path, FormatRecord(rec)); err != nil {
			return err
		}
		// A parse already in flight read the file before this record.
		r.group.Forget(r.path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append response user=%d survey=%s: %w", rec.UserID, rec.SurveyID, err)
	}

	r.log.InfoContext(ctx, "response appended",
		slog.Int64("user_id", rec.UserID),
		slog.String("survey_id", rec.SurveyID),
		slog.Int("answers", len(rec.Answers)),
	)
	return nil
}

// List returns every well-formed record in file order. Concurrent callers
// share one read and parse; the returned records must not be modified.
func (r *Repo) List(ctx context.Context) ([]domain.ResponseRecord, error) {
	v, err, _ := r.group.Do(r.path, func() (any, error) {
		text, err := r.store.Read(context.WithoutCancel(ctx), r.path)
		if err != nil {
			return nil, err
		}
		if r.beforeParse != nil {
			r.beforeParse()
		}
		return r.parse(ctx, text), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return slices.Clone(v.([]domain.ResponseRecord)), nil
}

// HasCompleted reports whether the log holds a completed record for the pair.
func (r *Repo) HasCompleted(ctx context.Context, userID int64, surveyID string) (bool, error) {
	records, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	return hasCompleted(records, userID, surveyID), nil
}

func (r *Repo) parse(ctx context.Context, text string) []domain.ResponseRecord {
	res := Parse(text)
	for _, s := range res.Skipped {
		metrics.SkippedBlocks.WithLabelValues(s.Reason).Inc()
		r.log.WarnContext(ctx, "skipping malformed response block",
			slog.String("path", r.path),
			slog.Int("line", s.Line),
			slog.String("reason", s.Reason),
		)
	}
	return res.Records
}

func hasCompleted(records []domain.ResponseRecord, userID int64, surveyID string) bool {
	return slices.ContainsFunc(records, func(rec domain.ResponseRecord) bool {
		return rec.Completed && rec.UserID == userID && rec.SurveyID == surveyID
	})
}
