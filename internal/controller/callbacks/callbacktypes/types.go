package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/hotel_console/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// Screen открытый экран пользователя
type Screen interface {
	Close()
}

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	SetState(telegramID int64, state UserState)
	SetScreen(telegramID int64, screen Screen)
	GetScreen(telegramID int64) Screen
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	Auth         *service.AuthService
	StateManager StateManager
	Logger       *zap.Logger

	// NotifyTTL сколько живёт всплывающее уведомление об успешном действии
	NotifyTTL time.Duration
}
