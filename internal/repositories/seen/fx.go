package seen

import (
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/orgball2608/freecycle-offer-bot/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Module("seen_repository",
	fx.Provide(New),
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// New picks Postgres when it is configured and falls back to memory.
func New(opts Opts) (Repository, error) {
	if !opts.Config.PostgresEnabled() {
		opts.Logger.Warn("POSTGRES_HOST not set, seen posts are kept in memory only")
		return NewMemory(), nil
	}

	pool, err := pgx.New(pgx.Opts{
		LC:     opts.LC,
		Logger: opts.Logger,
		Config: opts.Config,
	})
	if err != nil {
		return nil, err
	}
	return NewPgx(pool, opts.Logger), nil
}
