package handlers

import (
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/hotel_console/internal/controller/state"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	auth         *service.AuthService
	stateManager *state.Manager
	// callbacks общие зависимости экранов, команды рисуют те же экраны, что и кнопки
	callbacks *callbacktypes.Handler
	logger    *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	auth *service.AuthService,
	stateManager *state.Manager,
	callbacks *callbacktypes.Handler,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		auth:         auth,
		stateManager: stateManager,
		callbacks:    callbacks,
		logger:       logger,
	}
}
