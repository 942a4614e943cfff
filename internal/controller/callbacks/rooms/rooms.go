package rooms

import (
	"context"
	"fmt"
	"html"
	"strconv"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Prefix префикс callback data раздела номеров
const Prefix = "rm"

// ListData callback открытия списка номеров
const ListData = Prefix + "_open"

func rowID(r model.Room) string {
	return strconv.Itoa(r.Number)
}

// ListConfig отображение списка номеров (только просмотр)
var ListConfig = common.ListConfig[model.Room]{
	Prefix:   Prefix,
	Title:    "🛏 Номера",
	Empty:    "📭 Номеров нет.",
	RowID:    rowID,
	RowLine:  RowLine,
	RowLabel: RowLabel,
	Actions:  RowActions,
	Noun:     formatting.PluralizeRooms,
}

// RowLine строка номера в тексте списка
func RowLine(r model.Room) string {
	state := formatting.GetStatusDisplay(r.StateName)
	return fmt.Sprintf("№%d · %s · 👥 %d · %s %s",
		r.Number,
		html.EscapeString(r.CategoryName),
		r.Capacity,
		state.Emoji,
		html.EscapeString(state.Text),
	)
}

// RowLabel подпись кнопки строки
func RowLabel(r model.Room) string {
	return fmt.Sprintf("№%d · %s", r.Number, r.CategoryName)
}

// RowActions у номеров есть только объявленное удаление
func RowActions(r model.Room) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		keyboard.DeleteButton(Prefix + "_delete:" + rowID(r)),
	}
}

func fetchAll(hc *common.HandlerContext) func(ctx context.Context) ([]model.Room, error) {
	return hc.API.GetAllRooms
}

// ShowList открывает список номеров
func ShowList(hc *common.HandlerContext) {
	common.OpenList(hc, ListConfig, fetchAll(hc))
}

// HandleCallback обрабатывает callback раздела номеров ("rm_<action>:<arg>")
func HandleCallback(hc *common.HandlerContext, action, arg string) {
	if common.HandleListCallback(hc, ListConfig, fetchAll(hc), action, arg) {
		return
	}

	switch action {
	case "delete":
		hc.Handler.Logger.Info("Room delete requested",
			zap.String("room", arg),
			zap.Int64("telegram_id", hc.TelegramID))
		hc.AnswerAlert(common.ErrorMessage(common.ErrActionUnavailable))
	default:
		common.HandleError(hc, common.ErrInvalidFormat, "room_callback")
	}
}
