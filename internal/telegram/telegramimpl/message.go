package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (tg *TelegramImpl) channelName() string {
	return "@" + tg.Config.Telegram.Channel
}

// SendMessageToChannel sends a MarkdownV2 text message to the configured channel
func (tg *TelegramImpl) SendMessageToChannel(text string) (int, error) {
	msg := tgbotapi.NewMessageToChannel(tg.channelName(), text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	sent, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message to channel",
			"channel", tg.channelName(),
			"error", err)
		return 0, fmt.Errorf("failed to send message to channel: %w", err)
	}

	tg.Logger.Info("Message sent to channel",
		"channel", tg.channelName(),
		"messageID", sent.MessageID)
	return sent.MessageID, nil
}

// SendPhotoToChannel lets Telegram fetch photoURL itself and posts it with a MarkdownV2 caption
func (tg *TelegramImpl) SendPhotoToChannel(photoURL, caption string) (int, error) {
	photo := tgbotapi.NewPhotoToChannel(tg.channelName(), tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdownV2

	sent, err := tg.TgBot.Send(photo)
	if err != nil {
		tg.Logger.Error("Error sending photo to channel",
			"channel", tg.channelName(),
			"url", photoURL,
			"error", err)
		return 0, fmt.Errorf("failed to send photo to channel: %w", err)
	}

	tg.Logger.Info("Photo sent to channel",
		"channel", tg.channelName(),
		"messageID", sent.MessageID)
	return sent.MessageID, nil
}
