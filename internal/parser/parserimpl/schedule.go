package parserimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const checkTimeout = 30 * time.Minute

// ScheduleBoardChecking runs CheckBoards on the configured cron expression.
// Runs never overlap: a tick that fires during a run is rescheduled.
func (p *ParserImpl) ScheduleBoardChecking(ctx context.Context) error {
	interval := p.Config.Parser.CheckInterval
	p.Logger.Info("Setting up board checking", "interval", interval, "boards", len(p.Sources.Boards))

	jobOpts := []gocron.JobOption{
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if p.Config.Parser.RunOnStart {
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := p.Scheduler.NewJob(
		gocron.CronJob(interval, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, skipping board check")
				return
			}

			checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
			defer cancel()

			if _, err := p.CheckBoards(checkCtx); err != nil {
				p.Logger.Error("Board check aborted", "error", err)
			}
		}),
		jobOpts...,
	)
	if err != nil {
		return fmt.Errorf("failed to schedule board checking: %w", err)
	}

	p.start(ctx)
	return nil
}
