package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/bookings"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/complaints"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/dashboard"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/forms"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/payments"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/rooms"
	"github.com/Freeeeeet/hotel_console/internal/controller/state"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	hc := h.messageContext(ctx, b, update.Message)
	if err := hc.LoadSession(); err != nil {
		if !errors.Is(err, service.ErrNotAuthenticated) {
			common.HandleError(hc, err, "start")
			return
		}
		h.sendMessage(ctx, b, update.Message.Chat.ID, common.WelcomeText)
		common.StartLogin(hc, "")
		return
	}

	hc.ClearState()
	common.ShowMainMenu(hc)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, common.HelpText)
}

// HandleLogin обрабатывает команду /login - вход под другой учётной записью
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	common.StartLogin(h.messageContext(ctx, b, update.Message), "")
}

// HandleLogout обрабатывает команду /logout
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	common.HandleLogout(h.messageContext(ctx, b, update.Message))
}

// HandleWhoAmI показывает, под кем выполнен вход
func (h *Handlers) HandleWhoAmI(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.withSession(ctx, b, update, func(hc *common.HandlerContext) {
		expires := ""
		if !hc.Session.ExpiresAt.IsZero() {
			expires = formatting.FormatDateTime(hc.Session.ExpiresAt.Local())
		}
		h.sendMessage(ctx, b, hc.ChatID, common.BuildWhoAmI(hc.Session.Username, expires))
	})
}

// HandleDashboard обрабатывает команду /dashboard
func (h *Handlers) HandleDashboard(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sectionCommand(dashboard.Show)(ctx, b, update)
}

// HandleBookings обрабатывает команду /bookings
func (h *Handlers) HandleBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sectionCommand(bookings.ShowList)(ctx, b, update)
}

// HandleComplaints обрабатывает команду /complaints
func (h *Handlers) HandleComplaints(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sectionCommand(complaints.ShowList)(ctx, b, update)
}

// HandlePayments обрабатывает команду /payments
func (h *Handlers) HandlePayments(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sectionCommand(payments.ShowList)(ctx, b, update)
}

// HandleRooms обрабатывает команду /rooms
func (h *Handlers) HandleRooms(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sectionCommand(rooms.ShowList)(ctx, b, update)
}

// HandleNewBooking обрабатывает команду /newbooking
func (h *Handlers) HandleNewBooking(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sectionCommand(forms.StartBooking)(ctx, b, update)
}

// HandleNewComplaint обрабатывает команду /newcomplaint
func (h *Handlers) HandleNewComplaint(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.withSession(ctx, b, update, func(hc *common.HandlerContext) {
		forms.StartComplaint(hc, 0)
	})
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone && h.stateManager.GetScreen(telegramID) == nil {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(common.ErrNothingToCancel))
		return
	}

	// Очищаем состояние и закрываем открытый экран
	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.\n\nИспользуйте /start, чтобы открыть меню.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	// Текст сообщения не логируется: это может быть пароль
	h.logger.Info("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		h.logger.Debug("No active state, ignoring message",
			zap.Int64("telegram_id", telegramID))
	case state.StateLoginUsername:
		h.handleLoginUsername(ctx, b, update)
	case state.StateLoginPassword:
		h.handleLoginPassword(ctx, b, update)
	case state.StateFormInput:
		h.withSession(ctx, b, update, func(hc *common.HandlerContext) {
			forms.HandleFieldInput(hc, update.Message)
		})
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
