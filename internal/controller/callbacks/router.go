package callbacks

import (
	"context"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/bookings"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/complaints"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/dashboard"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/forms"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/payments"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/rooms"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================
// Callback data имеет вид "<prefix>_<action>:<arg>", маршрут выбирается по префиксу

// sectionHandler обработчик callback одного раздела
type sectionHandler func(hc *common.HandlerContext, action, arg string)

// sections разделы, требующие входа в систему
var sections = map[string]sectionHandler{
	bookings.Prefix:       bookings.HandleCallback,
	complaints.Prefix:     complaints.HandleCallback,
	payments.Prefix:       payments.HandleCallback,
	rooms.Prefix:          rooms.HandleCallback,
	dashboard.Prefix:      dashboard.HandleCallback,
	forms.BookingPrefix:   forms.HandleBookingCallback,
	forms.ComplaintPrefix: forms.HandleComplaintCallback,
	"menu":                handleMenu,
	"auth":                handleAuth,
}

// Route направляет callback в обработчик раздела
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data
	hc := common.NewHandlerContext(ctx, b, callback, h)

	if data == keyboard.NoopData {
		hc.Answer("")
		return
	}

	prefix, action, arg := common.ParseCallback(data)
	handler, ok := sections[prefix]
	if !ok {
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("telegram_id", callback.From.ID))
		hc.Answer("❌ Неизвестная команда")
		return
	}

	if hc.Message == nil {
		common.HandleError(hc, common.ErrNoMessage, "route")
		return
	}

	common.WithSession(hc, func(hc *common.HandlerContext) {
		handler(hc, action, arg)
	})
}

func handleMenu(hc *common.HandlerContext, action, _ string) {
	switch action {
	case "main":
		common.HandleBackToMain(hc)
	default:
		common.HandleError(hc, common.ErrInvalidFormat, "menu_callback")
	}
}

func handleAuth(hc *common.HandlerContext, action, _ string) {
	switch action {
	case "logout":
		common.HandleLogout(hc)
	default:
		common.HandleError(hc, common.ErrInvalidFormat, "auth_callback")
	}
}
