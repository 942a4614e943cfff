package common

import (
	"errors"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"go.uber.org/zap"
)

// WithSession проверяет вход и вызывает handler.
// Без сессии пользователь отправляется на ввод логина.
func WithSession(hc *HandlerContext, handler func(*HandlerContext)) {
	if err := hc.LoadSession(); err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			hc.Handler.Logger.Info("Session required",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
			hc.Answer("")
			StartLogin(hc, ErrorMessage(err))
			return
		}
		HandleError(hc, err, "load_session")
		return
	}

	handler(hc)
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err),
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("api", apiErr.Describe()))
	}
	hc.Handler.Logger.Error("Operation failed", fields...)
	hc.AnswerAlert(ErrorMessage(err))
}

// LogAndAnswer логирует действие и отвечает на callback
func LogAndAnswer(hc *HandlerContext, message string, answer string) {
	fields := []zap.Field{zap.Int64("telegram_id", hc.TelegramID)}
	if hc.Session != nil {
		fields = append(fields, zap.String("username", hc.Session.Username))
	}
	hc.Handler.Logger.Info(message, fields...)
	hc.Answer(answer)
}
