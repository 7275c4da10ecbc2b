// Package filestore implements crash-safe text file persistence: per-path
// locking, atomic replace with a .bak sibling, encoding-tolerant reads and
// bounded retries on transient I/O failures.
package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
	"github.com/heartmarshall/surveybot/pkg/keylock"
)

const backupSuffix = ".bak"

// Options tunes the store's limits and retry policy.
type Options struct {
	MaxFileSize   int64
	MinFreeSpace  uint64
	RetryAttempts int
	RetryInterval time.Duration
}

// Store provides atomic read/write/append of whole text files.
// Operations on the same path are serialized; different paths are independent.
type Store struct {
	log   *slog.Logger
	opts  Options
	locks *keylock.Locker[string]

	// Hooks replaced in tests to simulate crashes.
	rename       func(oldpath, newpath string) error
	beforeCommit func(path string) error
	freeSpace    func(dir string) (uint64, bool)
	now          func() time.Time
}

// New creates a file store.
func New(log *slog.Logger, opts Options) *Store {
	return &Store{
		log:       log.With("adapter", "filestore"),
		opts:      opts,
		locks:     keylock.New[string](),
		rename:    os.Rename,
		freeSpace: diskFree,
		now:       time.Now,
	}
}

// Read returns the decoded content of path. A missing file yields "".
func (s *Store) Read(ctx context.Context, path string) (string, error) {
	path = filepath.Clean(path)
	unlock := s.locks.Lock(path)
	defer unlock()

	return s.read(ctx, path)
}

// Write atomically replaces the content of path.
func (s *Store) Write(ctx context.Context, path, content string) error {
	path = filepath.Clean(path)
	unlock := s.locks.Lock(path)
	defer unlock()

	return s.write(ctx, path, content)
}

// Append atomically adds content to the end of path, inserting a newline
// when the current content does not end with one.
func (s *Store) Append(ctx context.Context, path, content string) error {
	path = filepath.Clean(path)
	unlock := s.locks.Lock(path)
	defer unlock()

	return s.appendLocked(ctx, path, content)
}

func (s *Store) appendLocked(ctx context.Context, path, content string) error {
	current, err := s.read(ctx, path)
	if err != nil {
		return err
	}
	return s.write(ctx, path, joinContent(current, content))
}

func joinContent(current, content string) string {
	if current == "" || strings.HasSuffix(current, "\n") {
		return current + content
	}
	return current + "\n" + content
}

func (s *Store) read(ctx context.Context, path string) (string, error) {
	var data []byte
	err := s.retry(ctx, "read", func() error {
		b, err := os.ReadFile(path)
		if err == nil {
			data = b
			return nil
		}
		if !os.IsNotExist(err) {
			return err
		}

		b, bakErr := os.ReadFile(path + backupSuffix)
		switch {
		case bakErr == nil:
			s.log.WarnContext(ctx, "file missing, reading backup", slog.String("path", path))
			metrics.StoreRestores.WithLabelValues("read").Inc()
			data = b
			return nil
		case os.IsNotExist(bakErr):
			data = nil
			return nil
		default:
			return bakErr
		}
	})
	metrics.StoreOps.WithLabelValues("read", metrics.Result(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := decode(data)
	if err != nil {
		s.log.ErrorContext(ctx, "corrupt file content, treating as empty",
			slog.String("path", path),
			slog.Int("bytes", len(data)),
		)
		metrics.StoreCorruptReads.Inc()
		return "", nil
	}
	return text, nil
}

func (s *Store) write(ctx context.Context, path, content string) error {
	if s.opts.MaxFileSize > 0 && int64(len(content)) > s.opts.MaxFileSize {
		metrics.StoreOps.WithLabelValues("write", "error").Inc()
		return fmt.Errorf("write %s: %d bytes exceeds %d: %w",
			path, len(content), s.opts.MaxFileSize, domain.ErrStorageLimit)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write %s: create dir: %w", path, err)
	}
	if err := s.checkFreeSpace(dir); err != nil {
		metrics.StoreOps.WithLabelValues("write", "error").Inc()
		return fmt.Errorf("write %s: %w", path, err)
	}

	err := s.retry(ctx, "write", func() error {
		return s.commit(ctx, path, []byte(content))
	})
	metrics.StoreOps.WithLabelValues("write", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// commit writes data to a temporary sibling, moves the current file to
// path.bak and renames the temporary file into place. If the final rename
// fails the previous content is restored from the backup.
func (s *Store) commit(ctx context.Context, path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}

	if s.beforeCommit != nil {
		if err = s.beforeCommit(path); err != nil {
			return err
		}
	}

	backup := path + backupSuffix
	hadPrevious := false
	if _, statErr := os.Stat(path); statErr == nil {
		if err = s.rename(path, backup); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		hadPrevious = true
	}

	if err = s.rename(tmpPath, path); err != nil {
		if !hadPrevious {
			return fmt.Errorf("replace: %w", err)
		}
		if restoreErr := s.rename(backup, path); restoreErr != nil {
			s.log.ErrorContext(ctx, "restore from backup failed",
				slog.String("path", path),
				slog.String("error", restoreErr.Error()),
			)
			return fmt.Errorf("replace: %w (restore failed: %v)", err, restoreErr)
		}
		metrics.StoreRestores.WithLabelValues("commit").Inc()
		s.log.WarnContext(ctx, "commit failed, previous content restored", slog.String("path", path))
		return fmt.Errorf("replace: %w", err)
	}

	syncDir(dir)
	return nil
}

func (s *Store) checkFreeSpace(dir string) error {
	if s.opts.MinFreeSpace == 0 {
		return nil
	}
	free, ok := s.freeSpace(dir)
	if !ok || free >= s.opts.MinFreeSpace {
		return nil
	}
	return fmt.Errorf("free space %d below %d: %w", free, s.opts.MinFreeSpace, domain.ErrStorageLimit)
}

// syncDir flushes the directory entry so the rename survives a power loss.
// Not supported everywhere; failures are ignored.
func syncDir(dir string) {
	if dir == "" {
		dir = "."
	}
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = f.Sync()
	_ = f.Close()
}
