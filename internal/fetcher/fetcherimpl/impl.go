package fetcherimpl

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/freecycle-offer-bot/internal/fetcher"
	"github.com/orgball2608/freecycle-offer-bot/internal/ratelimit"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/orgball2608/freecycle-offer-bot/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type FetcherImpl struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	retry   retry.Config
	logger  logger.Logger
}

func New(opts Opts) *FetcherImpl {
	client := resty.New()
	client.SetTimeout(opts.Config.HTTP.Timeout)

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = opts.Config.HTTP.MaxRetries

	return &FetcherImpl{
		http:    client,
		limiter: ratelimit.NewInMemoryLimiter(opts.Config.HTTP.RatePerSecond, time.Second, opts.Config.HTTP.Burst),
		retry:   retryCfg,
		logger:  opts.Logger.WithComponent("Fetcher"),
	}
}

var _ fetcher.Client = (*FetcherImpl)(nil)

// Fetch retries transport failures only. A response that arrives but is not
// a 200 HTML page is final and is not logged.
func (f *FetcherImpl) Fetch(ctx context.Context, link string) ([]byte, bool) {
	host := link
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		host = u.Host
	}

	var res *resty.Response
	err := retry.Do(ctx, f.logger, "fetch "+link, func() error {
		if err := f.limiter.Wait(ctx, host); err != nil {
			return retry.Permanent(err)
		}

		r, err := f.http.R().
			SetContext(ctx).
			Get(link)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(err)
			}
			return err
		}
		res = r
		return nil
	}, f.retry)
	if err != nil {
		f.logger.Error("Error during request", "url", link, "error", err)
		return nil, false
	}

	if !fetcher.IsGoodResponse(res.StatusCode(), res.Header().Get("Content-Type")) {
		return nil, false
	}

	f.logger.Debug("Fetched page", "url", link, "bytes", len(res.Body()))
	return res.Body(), true
}
