package parserimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/freecycle-offer-bot/internal/extractor"
	"github.com/orgball2608/freecycle-offer-bot/internal/fetcher"
	"github.com/orgball2608/freecycle-offer-bot/internal/notifier"
	"github.com/orgball2608/freecycle-offer-bot/internal/parser"
	"github.com/orgball2608/freecycle-offer-bot/internal/repositories/seen"
	"github.com/orgball2608/freecycle-offer-bot/internal/sources"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Fetcher  fetcher.Client
	Notifier notifier.Notifier
	SeenRepo seen.Repository
	Sources  sources.Sources
	Logger   logger.Logger
	Config   *config.Config
}

type ParserImpl struct {
	Fetcher   fetcher.Client
	Notifier  notifier.Notifier
	SeenRepo  seen.Repository
	Sources   sources.Sources
	Extractor *extractor.Extractor
	Logger    logger.Logger
	Config    *config.Config
	Scheduler gocron.Scheduler

	startOnce sync.Once
}

func New(opts Opts) (*ParserImpl, error) {
	log := opts.Logger.WithComponent("Parser")

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(location(opts.Config.Parser.Timezone, log)))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &ParserImpl{
		Fetcher:   opts.Fetcher,
		Notifier:  opts.Notifier,
		SeenRepo:  opts.SeenRepo,
		Sources:   opts.Sources,
		Extractor: extractor.New(extractor.DefaultSchema(), opts.Config.Parser.Strict),
		Logger:    log,
		Config:    opts.Config,
		Scheduler: scheduler,
	}, nil
}

var _ parser.Client = (*ParserImpl)(nil)

func location(name string, log logger.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("Failed to load timezone, using local timezone", "timezone", name, "error", err)
		return time.Local
	}
	return loc
}

// start runs the scheduler once and stops it when ctx is done.
func (p *ParserImpl) start(ctx context.Context) {
	p.startOnce.Do(func() {
		p.Scheduler.Start()

		go func() {
			<-ctx.Done()
			p.Logger.Info("Stopping scheduler")
			if err := p.Scheduler.Shutdown(); err != nil {
				p.Logger.Error("Failed to shut down scheduler", "error", err)
			}
		}()
	})
}

// ScheduleDatabaseCleanup sets up a daily job that forgets seen posts older than the retention
func (p *ParserImpl) ScheduleDatabaseCleanup(ctx context.Context) error {
	retention := p.Config.Parser.SeenRetention

	// Schedule a job to run at 3:00 AM every day
	_, err := p.Scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, skipping seen posts cleanup")
				return
			}

			p.Logger.Info("Starting scheduled seen posts cleanup")

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			rowsDeleted, err := p.SeenRepo.CleanupOldRecords(cleanupCtx, retention)
			if err != nil {
				p.Logger.Error("Failed to clean up seen posts", "error", err)
				return
			}

			p.Logger.Info("Seen posts cleanup completed", "rows_deleted", rowsDeleted, "retention", retention.String())
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule database cleanup: %w", err)
	}

	p.start(ctx)
	return nil
}
