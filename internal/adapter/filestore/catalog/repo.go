// Package catalog persists the survey catalog: the catalog document plus the
// active survey pointer, kept consistent with each other across crashes.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/surveybot/internal/adapter/filestore"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
)

// Repo provides catalog persistence backed by two files.
type Repo struct {
	store       *filestore.Store
	log         *slog.Logger
	surveysPath string
	activePath  string

	mu      sync.Mutex
	cached  *domain.Catalog
	watches []*filestore.Watcher

	// afterLoad runs once Load has released the file locks.
	afterLoad func()
}

// New creates a catalog repository.
func New(store *filestore.Store, log *slog.Logger, surveysPath, activePath string) *Repo {
	return &Repo{
		store:       store,
		log:         log.With("repo", "catalog"),
		surveysPath: surveysPath,
		activePath:  activePath,
	}
}

// WatchChanges drops the cached catalog whenever either file changes on
// disk, so edits made by another process are picked up.
func (r *Repo) WatchChanges() error {
	for _, p := range []string{r.surveysPath, r.activePath} {
		w, err := r.store.Watch(p, r.invalidate)
		if err != nil {
			_ = r.Close()
			return fmt.Errorf("watch catalog: %w", err)
		}
		r.mu.Lock()
		r.watches = append(r.watches, w)
		r.mu.Unlock()
	}
	return nil
}

// Close stops the file watchers.
func (r *Repo) Close() error {
	r.mu.Lock()
	watches := r.watches
	r.watches = nil
	r.mu.Unlock()

	for _, w := range watches {
		_ = w.Close()
	}
	return nil
}

func (r *Repo) invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

// Load returns a copy of the current catalog. The cache is only filled while
// the file locks are held, so it never moves behind a committed Update.
func (r *Repo) Load(ctx context.Context) (*domain.Catalog, error) {
	r.mu.Lock()
	if r.cached != nil {
		c := r.cached.Clone()
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	var cat *domain.Catalog
	err := r.store.RunLocked(ctx, r.paths(), func(tx *filestore.Tx) error {
		var err error
		if cat, err = r.read(ctx, tx); err != nil {
			return err
		}
		r.remember(cat)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if r.afterLoad != nil {
		r.afterLoad()
	}
	return cat.Clone(), nil
}

// Update applies fn to a fresh copy of the catalog under the catalog locks
// and persists the result. If fn returns an error nothing is written.
//
// A cleared active pointer is written before the catalog document; any other
// pointer change is written after it. Either way a crash between the two
// writes never leaves the pointer naming a survey that is not in the
// document.
func (r *Repo) Update(ctx context.Context, fn func(c *domain.Catalog) error) (*domain.Catalog, error) {
	var result *domain.Catalog
	err := r.store.RunLocked(ctx, r.paths(), func(tx *filestore.Tx) error {
		before, err := r.read(ctx, tx)
		if err != nil {
			return err
		}
		after := before.Clone()
		if err := fn(after); err != nil {
			return err
		}

		body, err := encodeSurveys(after.Surveys)
		if err != nil {
			return err
		}

		activeChanged := after.ActiveID != before.ActiveID
		if activeChanged && after.ActiveID == "" {
			if err := tx.Write(r.activePath, encodeActive("")); err != nil {
				return err
			}
			activeChanged = false
		}
		if err := tx.Write(r.surveysPath, body); err != nil {
			r.invalidate()
			return err
		}
		if activeChanged {
			if err := tx.Write(r.activePath, encodeActive(after.ActiveID)); err != nil {
				r.invalidate()
				return err
			}
		}

		result = after
		r.remember(result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result.Clone(), nil
}

func (r *Repo) paths() []string {
	return []string{r.surveysPath, r.activePath}
}

func (r *Repo) remember(c *domain.Catalog) {
	r.mu.Lock()
	r.cached = c.Clone()
	r.mu.Unlock()
}

func (r *Repo) read(ctx context.Context, tx *filestore.Tx) (*domain.Catalog, error) {
	surveysText, err := tx.Read(r.surveysPath)
	if err != nil {
		return nil, err
	}
	activeText, err := tx.Read(r.activePath)
	if err != nil {
		return nil, err
	}

	surveys, legacy, err := decodeSurveys(surveysText)
	if err != nil {
		r.log.ErrorContext(ctx, "catalog document is corrupt, treating as empty",
			slog.String("path", r.surveysPath),
			slog.String("error", err.Error()),
		)
		metrics.StoreCorruptReads.Inc()
		surveys = nil
	}
	if legacy {
		r.log.InfoContext(ctx, "legacy catalog format detected, will upgrade on next write",
			slog.Int("surveys", len(surveys)),
		)
	}

	cat := &domain.Catalog{Surveys: surveys, ActiveID: decodeActive(activeText)}
	if cat.ActiveID != "" && cat.Active() == nil {
		r.log.WarnContext(ctx, "active survey pointer is dangling, ignoring",
			slog.String("survey_id", cat.ActiveID),
		)
		cat.ActiveID = ""
	}
	return cat, nil
}
