package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/heartmarshall/surveybot/internal/transport/bot"
	"golang.org/x/sync/errgroup"
)

// BotOptions configures a console bot run.
type BotOptions struct {
	UserID      int64
	Username    string
	MetricsAddr string
}

// RunBot runs the console gateway for one user together with the export
// sweeper and, if an address is set, the metrics server. It returns when the
// input is exhausted or ctx is done.
func (a *App) RunBot(ctx context.Context, in io.Reader, out io.Writer, opts BotOptions) error {
	if err := a.catalogRepo.WatchChanges(); err != nil {
		a.log.WarnContext(ctx, "catalog watch disabled", slog.String("error", err.Error()))
	}

	a.log.InfoContext(ctx, "starting bot",
		slog.String("version", BuildVersion()),
		slog.Int64("user_id", opts.UserID),
	)

	gw := bot.NewConsoleGateway(out)
	dispatcher := a.Dispatcher(gw)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		defer stop()
		return gw.Run(runCtx, in, opts.UserID, opts.Username, dispatcher)
	})
	g.Go(func() error {
		a.RunMaintenance(runCtx)
		return nil
	})
	if opts.MetricsAddr != "" {
		g.Go(func() error {
			return a.ServeMetrics(runCtx, opts.MetricsAddr)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
