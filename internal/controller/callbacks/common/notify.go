package common

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// deleteTimeout время на удаление уведомления после истечения NotifyTTL
const deleteTimeout = 10 * time.Second

// Notify отправляет уведомление об успешном действии и удаляет его через NotifyTTL.
// При нулевом NotifyTTL уведомление остаётся в чате.
func Notify(hc *HandlerContext, text string) {
	msg, err := hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:    hc.ChatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		hc.Handler.Logger.Warn("Failed to send notification",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		return
	}

	ttl := hc.Handler.NotifyTTL
	if ttl <= 0 {
		return
	}

	b := hc.Bot
	chatID := hc.ChatID
	logger := hc.Handler.Logger
	// Контекст обработчика к этому моменту уже завершён
	time.AfterFunc(ttl, func() {
		ctx, cancel := context.WithTimeout(context.Background(), deleteTimeout)
		defer cancel()

		if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    chatID,
			MessageID: msg.ID,
		}); err != nil {
			logger.Debug("Failed to delete notification", zap.Error(err))
		}
	})
}
