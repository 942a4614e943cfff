package common

import (
	"context"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlerContext содержит общие данные для обработки callback или команды
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	Session    *model.Session
	API        *apiclient.Client
	TelegramID int64
	ChatID     int64

	// MessageID сообщение бота, в котором рисуется экран; 0 - отправить новое
	MessageID int
}

// NewHandlerContext создаёт контекст обработчика нажатия на кнопку
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	var messageID int
	if msg != nil {
		chatID = msg.Chat.ID
		messageID = msg.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		TelegramID: callback.From.ID,
		ChatID:     chatID,
		MessageID:  messageID,
	}
}

// NewMessageContext создаёт контекст обработчика команды или текстового сообщения.
// Экран будет отправлен новым сообщением.
func NewMessageContext(
	ctx context.Context,
	b *bot.Bot,
	msg *models.Message,
	h *callbacktypes.Handler,
) *HandlerContext {
	var telegramID int64
	if msg.From != nil {
		telegramID = msg.From.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Handler:    h,
		TelegramID: telegramID,
		ChatID:     msg.Chat.ID,
	}
}

// WithContext копия контекста обработчика с другим ctx.
// Нужна для действий, которые переживают исходный update.
func (hc *HandlerContext) WithContext(ctx context.Context) *HandlerContext {
	clone := *hc
	clone.Ctx = ctx
	return &clone
}

// LoadSession загружает действующую сессию и клиент API с её токеном
func (hc *HandlerContext) LoadSession() error {
	session, err := hc.Handler.Auth.Require(hc.Ctx, hc.TelegramID)
	if err != nil {
		return err
	}
	hc.Session = session
	hc.API = hc.Handler.Auth.Client(session)
	return nil
}

// Answer отвечает на callback query; для команд ничего не делает
func (hc *HandlerContext) Answer(text string) {
	if hc.Callback == nil {
		return
	}
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert показывает alert; для команд отправляет текст сообщением
func (hc *HandlerContext) AnswerAlert(text string) {
	if hc.Callback == nil {
		hc.SendMessage(text, nil)
		return
	}
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// Render рисует экран: редактирует текущее сообщение экрана или отправляет новое
func (hc *HandlerContext) Render(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.MessageID != 0 {
		_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
			ChatID:      hc.ChatID,
			MessageID:   hc.MessageID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: replyMarkup(keyboard),
		})

		// Игнорируем ошибку "message is not modified" - это не настоящая ошибка
		if err == nil || IsMessageNotModifiedError(err) {
			return nil
		}
		// Сообщение могло быть удалено или оказаться фото; рисуем заново
		hc.Handler.Logger.Debug("Edit failed, sending new message", zap.Error(err))
	}

	msg, err := hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:      hc.ChatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: replyMarkup(keyboard),
	})
	if err != nil {
		return err
	}
	hc.MessageID = msg.ID
	return nil
}

// EditMessage редактирует сообщение, к которому привязана кнопка
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}
	return hc.Render(text, keyboard)
}

// DeleteMessage удаляет сообщение экрана
func (hc *HandlerContext) DeleteMessage() error {
	if hc.MessageID == 0 {
		return ErrNoMessage
	}

	_, err := hc.Bot.DeleteMessage(hc.Ctx, &bot.DeleteMessageParams{
		ChatID:    hc.ChatID,
		MessageID: hc.MessageID,
	})
	hc.MessageID = 0

	return err
}

// SendMessage отправляет новое сообщение
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	_, err := hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:      hc.ChatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: replyMarkup(keyboard),
	})

	return err
}

// ClearState очищает состояние пользователя
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.TelegramID)
}

// SetState устанавливает состояние пользователя
func (hc *HandlerContext) SetState(state callbacktypes.UserState) {
	hc.Handler.StateManager.SetState(hc.TelegramID, state)
}

// SetScreen делает экран текущим; предыдущий экран закрывается
func (hc *HandlerContext) SetScreen(screen callbacktypes.Screen) {
	hc.Handler.StateManager.SetScreen(hc.TelegramID, screen)
}

// Screen текущий экран пользователя
func (hc *HandlerContext) Screen() callbacktypes.Screen {
	return hc.Handler.StateManager.GetScreen(hc.TelegramID)
}

// replyMarkup не даёт nil-указателю превратиться в непустой интерфейс
func replyMarkup(keyboard *models.InlineKeyboardMarkup) models.ReplyMarkup {
	if keyboard == nil {
		return nil
	}
	return keyboard
}
