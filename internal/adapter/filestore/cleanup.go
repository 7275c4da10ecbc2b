package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanupOlderThan removes regular files in dir whose name starts with
// prefix, plus leftover temporary siblings, when they were last modified
// more than maxAge ago. It returns the number of files removed.
func (s *Store) CleanupOlderThan(ctx context.Context, dir, prefix string, maxAge time.Duration) (int, error) {
	return s.cleanup(ctx, dir, maxAge, func(name string) bool {
		return strings.HasPrefix(name, prefix) || isTemp(name)
	})
}

// CleanupTemp removes only the temporary siblings left in dir by interrupted
// writes.
func (s *Store) CleanupTemp(ctx context.Context, dir string, maxAge time.Duration) (int, error) {
	return s.cleanup(ctx, dir, maxAge, isTemp)
}

func isTemp(name string) bool { return strings.Contains(name, ".tmp-") }

func (s *Store) cleanup(ctx context.Context, dir string, maxAge time.Duration, match func(string) bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cleanup %s: %w", dir, err)
	}

	cutoff := s.now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		name := e.Name()
		if e.IsDir() || !match(name) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.WarnContext(ctx, "cleanup: remove failed", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		removed++
	}

	if removed > 0 {
		s.log.InfoContext(ctx, "cleanup: removed stale files", slog.String("dir", dir), slog.Int("count", removed))
	}
	return removed, nil
}
