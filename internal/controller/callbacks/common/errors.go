package common

import (
	"errors"
	"strings"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage         = errors.New("no message in callback")
	ErrInvalidFormat     = errors.New("invalid callback format")
	ErrActionUnavailable = errors.New("action is not available")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDateTime   = errors.New("invalid date and time")
	ErrNothingToCancel   = errors.New("nothing to cancel")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	var validationErr *console.ValidationError

	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return "⌛ Сессия истекла. Войдите снова: /login"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "🔒 Требуется вход. Используйте /login"
	case errors.Is(err, service.ErrEmptyCredentials):
		return "❌ Введите логин и пароль"
	case errors.Is(err, service.ErrEmptyToken):
		return "❌ Сервер не выдал токен. Попробуйте ещё раз"
	case errors.As(err, &apiErr):
		return "❌ " + apiErr.Message
	case errors.As(err, &validationErr):
		return validationMessage(validationErr)
	case errors.Is(err, console.ErrIllegalChoice):
		return "❌ Этот вариант сейчас недоступен"
	case errors.Is(err, console.ErrNotReady):
		return "⏳ Данные ещё загружаются"
	case errors.Is(err, console.ErrSubmitting):
		return "⏳ Форма уже отправляется"
	case errors.Is(err, ErrActionUnavailable):
		return "🚧 Это действие пока недоступно"
	case errors.Is(err, ErrInvalidDate):
		return "❌ Неверный формат даты. Используйте ГГГГ-ММ-ДД, например 2025-06-01"
	case errors.Is(err, ErrInvalidDateTime):
		return "❌ Неверный формат. Используйте ГГГГ-ММ-ДД ЧЧ:ММ, например 2025-06-01 14:00"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, ErrNothingToCancel):
		return "❌ Нет активных операций для отмены."
	default:
		return "❌ Произошла ошибка"
	}
}

func validationMessage(err *console.ValidationError) string {
	if len(err.Missing) > 0 {
		labels := make([]string, 0, len(err.Missing))
		for _, field := range err.Missing {
			labels = append(labels, formatting.FieldLabel(field))
		}
		return "⚠️ Заполните поля: " + strings.Join(labels, ", ")
	}
	return "⚠️ Поле «" + formatting.FieldLabel(err.Field) + "» заполнено неверно"
}
