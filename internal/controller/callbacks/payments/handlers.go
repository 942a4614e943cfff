package payments

import (
	"context"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"go.uber.org/zap"
)

func fetchAll(hc *common.HandlerContext) func(ctx context.Context) ([]model.Payment, error) {
	return hc.API.GetAllPayments
}

// ShowList открывает список платежей
func ShowList(hc *common.HandlerContext) {
	common.OpenList(hc, ListConfig, fetchAll(hc))
}

// HandleCallback обрабатывает callback раздела платежей ("pm_<action>:<arg>")
func HandleCallback(hc *common.HandlerContext, action, arg string) {
	if common.HandleListCallback(hc, ListConfig, fetchAll(hc), action, arg) {
		return
	}

	switch action {
	case "confirm":
		id, err := common.ParseID(arg)
		if err != nil {
			common.HandleError(hc, err, "payment_confirm")
			return
		}
		common.RunListAction(hc, ListConfig, fetchAll(hc), "payment_confirm",
			func(ctx context.Context) error {
				return hc.API.ConfirmPayment(ctx, id)
			},
			"✅ Платёж подтверждён")

	case "delete":
		hc.Handler.Logger.Info("Payment delete requested",
			zap.String("payment_id", arg),
			zap.Int64("telegram_id", hc.TelegramID))
		hc.AnswerAlert(common.ErrorMessage(common.ErrActionUnavailable))

	default:
		common.HandleError(hc, common.ErrInvalidFormat, "payment_callback")
	}
}
