package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/internal/telegram"
	"github.com/orgball2608/freecycle-offer-bot/pkg/formatter"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/orgball2608/freecycle-offer-bot/pkg/retry"
)

const descriptionLimit = 300

// Telegram posts every match to the configured channel.
type Telegram struct {
	client telegram.Client
	logger logger.Logger
	retry  retry.Config
}

func NewTelegram(client telegram.Client, log logger.Logger) *Telegram {
	return &Telegram{
		client: client,
		logger: log.WithComponent("TelegramNotifier"),
		retry:  retry.DefaultConfig(),
	}
}

var _ Notifier = (*Telegram)(nil)

func (t *Telegram) BoardStarted(context.Context, domain.Board) error {
	return nil
}

func (t *Telegram) Notify(ctx context.Context, match domain.Match) error {
	text := FormatTelegram(match)
	post := match.Post

	return retry.Do(ctx, t.logger, "telegram notify", func() error {
		var err error
		if post.HasImage() && post.ImageURL != "" {
			_, err = t.client.SendPhotoToChannel(post.ImageURL, text)
		} else {
			_, err = t.client.SendMessageToChannel(text)
		}
		return err
	}, t.retry)
}

// FormatTelegram renders a match as a MarkdownV2 message.
func FormatTelegram(match domain.Match) string {
	p := match.Post

	title := p.Title
	if title == "" {
		title = "Untitled offer"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎁 *%s*\n", formatter.EscapeMarkdownV2(title))
	if p.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", formatter.EscapeMarkdownV2(p.Location))
	}
	if p.Date != "" {
		fmt.Fprintf(&b, "🗓 %s\n", formatter.EscapeMarkdownV2(p.Date))
	}
	if p.FullDesc != "" {
		fmt.Fprintf(&b, "\n%s\n", formatter.EscapeMarkdownV2(formatter.Truncate(p.FullDesc, descriptionLimit)))
	}
	fmt.Fprintf(&b, "\n🔑 %s\n", formatter.EscapeMarkdownV2(match.Keyword))
	fmt.Fprintf(&b, "🔗 [View post](%s)", formatter.EscapeMarkdownV2URL(p.URL))
	return b.String()
}
