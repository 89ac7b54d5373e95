package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/fetcher"
	"github.com/orgball2608/freecycle-offer-bot/internal/fetcher/fetcherimpl"
	"github.com/orgball2608/freecycle-offer-bot/internal/migrations"
	"github.com/orgball2608/freecycle-offer-bot/internal/notifier"
	"github.com/orgball2608/freecycle-offer-bot/internal/parser"
	"github.com/orgball2608/freecycle-offer-bot/internal/parser/parserimpl"
	"github.com/orgball2608/freecycle-offer-bot/internal/repositories/seen"
	"github.com/orgball2608/freecycle-offer-bot/internal/sources"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		sources.New,
		notifier.New,
	),
	fx.Provide(
		fx.Annotate(
			fetcherimpl.New,
			fx.As(new(fetcher.Client)),
		),
		fx.Annotate(
			parserimpl.New,
			fx.As(new(parser.Client)),
		),
	),
	seen.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(c *config.Config, log logger.Logger) error {
	if !c.PostgresEnabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := migrations.Up(ctx, c.GetDSN()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations applied")
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, src sources.Sources, pClient parser.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := newHttpServer(log, cfg)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if len(src.Boards) == 0 {
				log.Warn("No boards configured, nothing will be checked")
			}
			if len(src.Keywords) == 0 {
				log.Warn("No keywords configured, no post will match")
			}

			go func() {
				log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed to start", "error", err)
				}
			}()

			if err := pClient.ScheduleBoardChecking(ctx); err != nil {
				return err
			}
			return pClient.ScheduleDatabaseCleanup(ctx)
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			logger.Flush()
			return srv.Shutdown(stopCtx)
		},
	})
}

func newHttpServer(log logger.Logger, cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
