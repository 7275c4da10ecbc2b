// Package audit implements the append-only audit log as JSON lines on top
// of the file store.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/surveybot/internal/adapter/filestore"
	"github.com/heartmarshall/surveybot/internal/domain"
)

// Repo provides audit log persistence backed by a text file.
type Repo struct {
	store *filestore.Store
	path  string
	log   *slog.Logger
}

// New creates a new audit repository writing to path.
func New(store *filestore.Store, path string, log *slog.Logger) *Repo {
	return &Repo{store: store, path: path, log: log.With("repo", "audit")}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a record, filling ID and CreatedAt when empty, and returns
// the persisted record.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	line, err := json.Marshal(record)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal: %w", err)
	}
	if err := r.store.Append(ctx, r.path, string(line)+"\n"); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s: %w", record.ID, err)
	}
	return record, nil
}

// Log creates an audit record without returning it.
// Satisfies catalog.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history of one entity, newest first,
// limited to limit records (0 means all).
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error) {
	records, err := r.readAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	out := records[:0]
	for _, rec := range records {
		if rec.EntityType == entityType && rec.EntityID == entityID {
			out = append(out, rec)
		}
	}
	return newestFirst(out, limit), nil
}

// GetByActor returns the records written by one operator, newest first.
func (r *Repo) GetByActor(ctx context.Context, actorID int64, limit int) ([]domain.AuditRecord, error) {
	records, err := r.readAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by actor: %w", err)
	}
	out := records[:0]
	for _, rec := range records {
		if rec.ActorID == actorID {
			out = append(out, rec)
		}
	}
	return newestFirst(out, limit), nil
}

func (r *Repo) readAll(ctx context.Context) ([]domain.AuditRecord, error) {
	text, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}

	var records []domain.AuditRecord
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec domain.AuditRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			r.log.WarnContext(ctx, "skipping malformed audit line", slog.Int("line", i+1))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func newestFirst(records []domain.AuditRecord, limit int) []domain.AuditRecord {
	slices.Reverse(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
