package complaints

import (
	"context"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"go.uber.org/zap"
)

func fetchAll(hc *common.HandlerContext) func(ctx context.Context) ([]model.Complaint, error) {
	return hc.API.GetAllComplaints
}

// ShowList открывает список жалоб
func ShowList(hc *common.HandlerContext) {
	common.OpenList(hc, ListConfig, fetchAll(hc))
}

// ShowDetail открывает карточку жалобы
func ShowDetail(hc *common.HandlerContext, id int64) {
	common.OpenDetail(hc, DetailConfig, func(ctx context.Context) (*model.Complaint, error) {
		return hc.API.GetComplaintByID(ctx, id)
	})
}

// HandleCallback обрабатывает callback раздела жалоб ("cp_<action>:<arg>")
func HandleCallback(hc *common.HandlerContext, action, arg string) {
	if common.HandleListCallback(hc, ListConfig, fetchAll(hc), action, arg) {
		return
	}

	switch action {
	case "view":
		id, err := common.ParseID(arg)
		if err != nil {
			common.HandleError(hc, err, "complaint_view")
			return
		}
		ShowDetail(hc, id)
		hc.Answer("")

	case "resolve":
		id, statusCode, err := common.ParseIDPair(arg)
		if err != nil {
			common.HandleError(hc, err, "complaint_resolve")
			return
		}
		if statusCode != model.ComplaintStatusInProgress && statusCode != model.ComplaintStatusResolved {
			common.HandleError(hc, common.ErrInvalidFormat, "complaint_resolve")
			return
		}
		common.RunListAction(hc, ListConfig, fetchAll(hc), "complaint_resolve",
			func(ctx context.Context) error {
				return hc.API.ResolveComplaint(ctx, id, statusCode)
			},
			"✅ Статус: "+formatting.ComplaintStatusName(statusCode))

	case "delete":
		hc.Handler.Logger.Info("Complaint delete requested",
			zap.String("complaint_id", arg),
			zap.Int64("telegram_id", hc.TelegramID))
		hc.AnswerAlert(common.ErrorMessage(common.ErrActionUnavailable))

	default:
		common.HandleError(hc, common.ErrInvalidFormat, "complaint_callback")
	}
}
