package notifier

import (
	"context"
	"os"

	"github.com/orgball2608/freecycle-offer-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// New always prints to stdout and adds Telegram and Kafka when configured.
func New(opts Opts) (Notifier, error) {
	sinks := Multi{NewStdout(os.Stdout)}

	if opts.Config.TelegramEnabled() {
		client, err := telegramimpl.New(telegramimpl.Opts{
			Config: opts.Config,
			Logger: opts.Logger,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, NewTelegram(client, opts.Logger))
		opts.Logger.Info("Telegram notifications enabled", "channel", opts.Config.Telegram.Channel)
	}

	if opts.Config.KafkaEnabled() {
		k := NewKafka(opts.Config.Kafka.Brokers, opts.Config.Kafka.Topic, opts.Logger)
		sinks = append(sinks, k)
		opts.LC.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return k.Close()
			},
		})
		opts.Logger.Info("Kafka notifications enabled", "topic", opts.Config.Kafka.Topic)
	}

	return sinks, nil
}
