package bookings

import (
	"context"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"go.uber.org/zap"
)

func fetchAll(hc *common.HandlerContext) func(ctx context.Context) ([]model.Booking, error) {
	return hc.API.GetAllBookings
}

// ShowList открывает список бронирований
func ShowList(hc *common.HandlerContext) {
	common.OpenList(hc, ListConfig, fetchAll(hc))
}

// ShowDetail открывает карточку бронирования
func ShowDetail(hc *common.HandlerContext, id int64) {
	common.OpenDetail(hc, DetailConfig, func(ctx context.Context) (*model.Booking, error) {
		return hc.API.GetBookingByID(ctx, id)
	})
}

// HandleCallback обрабатывает callback раздела бронирований ("bk_<action>:<arg>")
func HandleCallback(hc *common.HandlerContext, action, arg string) {
	if common.HandleListCallback(hc, ListConfig, fetchAll(hc), action, arg) {
		return
	}

	switch action {
	case "view":
		id, err := common.ParseID(arg)
		if err != nil {
			common.HandleError(hc, err, "booking_view")
			return
		}
		ShowDetail(hc, id)
		hc.Answer("")

	case "confirm":
		id, err := common.ParseID(arg)
		if err != nil {
			common.HandleError(hc, err, "booking_confirm")
			return
		}
		common.RunListAction(hc, ListConfig, fetchAll(hc), "booking_confirm",
			func(ctx context.Context) error {
				return hc.API.ConfirmBooking(ctx, id)
			},
			"✅ Гость заселён")

	case "delete":
		hc.Handler.Logger.Info("Booking delete requested",
			zap.String("booking_id", arg),
			zap.Int64("telegram_id", hc.TelegramID))
		hc.AnswerAlert(common.ErrorMessage(common.ErrActionUnavailable))

	default:
		common.HandleError(hc, common.ErrInvalidFormat, "booking_callback")
	}
}
