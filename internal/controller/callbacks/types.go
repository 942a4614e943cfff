package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Handler with Dependencies
// ========================

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	auth *service.AuthService,
	stateManager callbacktypes.StateManager,
	logger *zap.Logger,
	notifyTTL time.Duration,
) *Handler {
	inner := &callbacktypes.Handler{
		Auth:         auth,
		StateManager: stateManager,
		Logger:       logger,
		NotifyTTL:    notifyTTL,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h.Handler)
}
