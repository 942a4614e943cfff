package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Ключи данных диалога входа
const loginUsernameKey = "login_username"

// handleLoginUsername запоминает логин и спрашивает пароль
func (h *Handlers) handleLoginUsername(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	username := strings.TrimSpace(update.Message.Text)

	if username == "" {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Логин не может быть пустым.\n\n👤 Введите логин:")
		return
	}

	h.stateManager.SetData(telegramID, loginUsernameKey, username)
	h.stateManager.SetState(telegramID, state.StateLoginPassword)

	h.logger.Info("Login username received",
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username))

	h.sendMessage(ctx, b, update.Message.Chat.ID, "🔑 Введите пароль:\n\nСообщение с паролем будет удалено.")
}

// handleLoginPassword выполняет вход и показывает главное меню
func (h *Handlers) handleLoginPassword(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	password := update.Message.Text

	// Пароль не должен оставаться в истории чата
	h.deleteMessage(ctx, b, update.Message)

	hc := h.messageContext(ctx, b, update.Message)

	usernameData, ok := h.stateManager.GetData(telegramID, loginUsernameKey)
	username, _ := usernameData.(string)
	if !ok || username == "" {
		common.StartLogin(hc, "❌ Логин потерялся, начнём сначала.")
		return
	}

	session, err := h.auth.Login(ctx, telegramID, username, password)
	if err != nil {
		h.logger.Warn("Login failed",
			zap.Int64("telegram_id", telegramID),
			zap.String("username", username),
			zap.Error(err))
		common.StartLogin(hc, common.ErrorMessage(err))
		return
	}

	hc.ClearState()
	hc.Session = session
	hc.API = h.auth.Client(session)

	h.sendMessage(ctx, b, hc.ChatID, "✅ Вход выполнен")
	common.ShowMainMenu(hc)
}
