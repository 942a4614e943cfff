package handlers

import (
	"context"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// withSession выполняет команду от имени вошедшего сотрудника.
// Без сессии начинается диалог входа.
func (h *Handlers) withSession(ctx context.Context, b *bot.Bot, update *models.Update, handler func(hc *common.HandlerContext)) {
	if update.Message == nil {
		return
	}
	common.WithSession(h.messageContext(ctx, b, update.Message), handler)
}

// sectionCommand команда, открывающая раздел консоли
func (h *Handlers) sectionCommand(show func(hc *common.HandlerContext)) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.withSession(ctx, b, update, show)
	}
}
