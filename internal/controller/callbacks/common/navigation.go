package common

import (
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/hotel_console/internal/controller/state"
	"go.uber.org/zap"
)

// ========================
// Common Navigation Handlers
// ========================

// HandleBackToMain закрывает текущий экран и показывает главное меню новым сообщением
func HandleBackToMain(hc *HandlerContext) {
	hc.ClearState()

	// Экран мог быть фотографией дашборда, её нельзя отредактировать в текст
	if hc.MessageID != 0 {
		if err := hc.DeleteMessage(); err != nil {
			hc.Handler.Logger.Debug("Failed to delete screen message", zap.Error(err))
		}
	}

	ShowMainMenu(hc)
	hc.Answer("")
}

// ShowMainMenu рисует главное меню для вошедшего сотрудника
func ShowMainMenu(hc *HandlerContext) {
	username := ""
	if hc.Session != nil {
		username = hc.Session.Username
	}

	text, kb := BuildMainMenu(username)
	if err := hc.Render(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to show main menu",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// StartLogin начинает диалог входа: спрашивает логин
func StartLogin(hc *HandlerContext, reason string) {
	hc.ClearState()
	hc.SetState(callbacktypes.UserState(state.StateLoginUsername))

	text := "👤 Введите логин:"
	if reason != "" {
		text = reason + "\n\n" + text
	}
	if err := hc.SendMessage(text, nil); err != nil {
		hc.Handler.Logger.Error("Failed to start login",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// HandleLogout завершает сессию сотрудника
func HandleLogout(hc *HandlerContext) {
	hc.ClearState()

	if err := hc.Handler.Auth.Logout(hc.Ctx, hc.TelegramID); err != nil {
		HandleError(hc, err, "logout")
		return
	}

	hc.Answer("Вы вышли")
	if err := hc.Render("👋 Вы вышли из системы.\n\nЧтобы войти снова, используйте /login", nil); err != nil {
		hc.Handler.Logger.Warn("Failed to render logout", zap.Error(err))
	}
}
