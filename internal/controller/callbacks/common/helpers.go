package common

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseCallback разбирает callback data вида "<prefix>_<action>:<arg>".
// Например: "cp_resolve:9:3" -> "cp", "resolve", "9:3"
func ParseCallback(data string) (prefix, action, arg string) {
	head, arg, _ := strings.Cut(data, ":")
	prefix, action, _ = strings.Cut(head, "_")
	return prefix, action, arg
}

// ParseID разбирает числовой идентификатор из аргумента callback
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return id, nil
}

// ParseIDPair разбирает аргумент вида "9:3"
func ParseIDPair(arg string) (int64, int, error) {
	first, second, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, 0, ErrInvalidFormat
	}
	id, err := ParseID(first)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(second)
	if err != nil {
		return 0, 0, ErrInvalidFormat
	}
	return id, n, nil
}

// IsMessageNotModifiedError true, если Telegram отказал в редактировании, потому что текст не изменился
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
