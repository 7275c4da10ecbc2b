// Package app wires configuration, storage, services and transports into a
// runnable survey bot.
package app

import (
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/adapter/filestore"
	"github.com/heartmarshall/surveybot/internal/adapter/filestore/audit"
	catalogrepo "github.com/heartmarshall/surveybot/internal/adapter/filestore/catalog"
	"github.com/heartmarshall/surveybot/internal/adapter/filestore/responselog"
	"github.com/heartmarshall/surveybot/internal/config"
	"github.com/heartmarshall/surveybot/internal/service/catalog"
	"github.com/heartmarshall/surveybot/internal/service/responses"
	"github.com/heartmarshall/surveybot/internal/service/session"
	"github.com/heartmarshall/surveybot/internal/transport/bot"
	"github.com/heartmarshall/surveybot/internal/transport/middleware"
)

// App holds the wired components. Close must be called when done.
type App struct {
	cfg *config.Config
	log *slog.Logger

	Store     *filestore.Store
	Audit     *audit.Repo
	Catalog   *catalog.Service
	Sessions  *session.Service
	Responses *responses.Service
	Limiter   *middleware.RateLimiter

	catalogRepo *catalogrepo.Repo
}

// New wires the file store, repositories and services from cfg.
func New(cfg *config.Config, logger *slog.Logger) *App {
	store := filestore.New(logger, filestore.Options{
		MaxFileSize:   cfg.Storage.MaxFileSize,
		MinFreeSpace:  cfg.Storage.MinFreeSpace,
		RetryAttempts: cfg.Storage.RetryAttempts,
		RetryInterval: cfg.Storage.RetryInterval,
	})

	// --- Repositories ---
	catalogRepo := catalogrepo.New(store, logger, cfg.Storage.SurveysPath(), cfg.Storage.ActivePath())
	auditRepo := audit.New(store, cfg.Storage.AuditPath(), logger)
	responseRepo := responselog.New(store, cfg.Storage.ResponsesPath(), logger)

	// --- Services ---
	catalogService := catalog.NewService(logger, catalogRepo, auditRepo, cfg.Survey)
	sessionService := session.NewService(logger, catalogService, responseRepo, cfg.Survey)
	responseService := responses.NewService(logger, responseRepo, catalogService, store, cfg.Storage.ExportDir)

	return &App{
		cfg:         cfg,
		log:         logger,
		Store:       store,
		Audit:       auditRepo,
		Catalog:     catalogService,
		Sessions:    sessionService,
		Responses:   responseService,
		Limiter:     middleware.NewRateLimiter(cfg.RateLimit),
		catalogRepo: catalogRepo,
	}
}

// Dispatcher builds a dispatcher for gw with the full middleware chain.
func (a *App) Dispatcher(gw bot.Gateway) *bot.Dispatcher {
	return bot.NewDispatcher(a.log, gw, a.Sessions, a.Catalog, a.Responses,
		middleware.RequestID,
		middleware.Identity(a.cfg.Admin),
		middleware.Recovery(a.log),
		middleware.Logger(a.log),
		middleware.AdminOnly,
		a.Limiter.Limit(bot.Classify),
	)
}

// Close stops background workers and file watchers.
func (a *App) Close() error {
	a.Limiter.Stop()
	return a.catalogRepo.Close()
}
