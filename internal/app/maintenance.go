package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/surveybot/internal/metrics"
	"github.com/heartmarshall/surveybot/internal/service/responses"
)

// CleanupExports removes export files older than the configured retention,
// along with temporary files that interrupted writes left in the data
// directory.
func (a *App) CleanupExports(ctx context.Context) (int, error) {
	retention := a.cfg.Cleanup.ExportRetention
	removed, err := a.Store.CleanupOlderThan(ctx, a.cfg.Storage.ExportDir, responses.ExportPrefix, retention)
	if err != nil {
		return removed, fmt.Errorf("cleanup exports: %w", err)
	}
	temps, err := a.Store.CleanupTemp(ctx, a.cfg.Storage.DataDir, retention)
	removed += temps
	if err != nil {
		return removed, fmt.Errorf("cleanup temp files: %w", err)
	}
	return removed, nil
}

// RunMaintenance sweeps stale exports every cleanup interval until ctx is
// done. A non-positive interval runs a single sweep.
func (a *App) RunMaintenance(ctx context.Context) {
	a.sweep(ctx)

	interval := a.cfg.Cleanup.Interval
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.sweep(ctx)
		}
	}
}

func (a *App) sweep(ctx context.Context) {
	removed, err := a.CleanupExports(ctx)
	if err != nil {
		a.log.WarnContext(ctx, "export cleanup failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		a.log.InfoContext(ctx, "export cleanup completed", slog.Int("removed", removed))
	}
}

// ServeMetrics serves Prometheus metrics on addr until ctx is done.
func (a *App) ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.log.InfoContext(ctx, "metrics server listening", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
