// Command cleanup removes export files older than the configured retention
// period from the export directory. It is intended to be invoked by an
// external cron job; the bot also sweeps exports periodically while running.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/surveybot/internal/app"
	"github.com/heartmarshall/surveybot/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a := app.New(cfg, logger)
	defer a.Close()

	removed, err := a.CleanupExports(ctx)
	if err != nil {
		logger.Error("export cleanup failed",
			slog.String("error", err.Error()),
			slog.String("export_dir", cfg.Storage.ExportDir),
		)
		_ = a.Close()
		os.Exit(1)
	}

	logger.Info("export cleanup completed",
		slog.Int("removed", removed),
		slog.Duration("retention", cfg.Cleanup.ExportRetention),
	)
}
