package payments

import (
	"fmt"
	"html"
	"strconv"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/bookings"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot/models"
)

// Prefix префикс callback data раздела платежей
const Prefix = "pm"

// ListData callback открытия списка платежей
const ListData = Prefix + "_open"

func rowID(p model.Payment) string {
	return strconv.FormatInt(p.ID, 10)
}

// ListConfig отображение списка платежей
var ListConfig = common.ListConfig[model.Payment]{
	Prefix:   Prefix,
	Title:    "💳 Платежи",
	Empty:    "📭 Платежей пока нет.",
	RowID:    rowID,
	RowLine:  RowLine,
	RowLabel: RowLabel,
	Actions:  RowActions,
	Noun:     formatting.PluralizePayments,
}

// RowLine строка платежа в тексте списка
func RowLine(p model.Payment) string {
	status := formatting.GetStatusDisplay(p.StatusName)
	method := p.MethodName
	if method == "" {
		method = "—"
	}
	return fmt.Sprintf("#%d · бронь #%d · %s\n    %s %s · %s · %s",
		p.ID,
		p.BookingID,
		formatting.FormatMoney(p.Amount),
		status.Emoji,
		html.EscapeString(status.Text),
		html.EscapeString(method),
		formatting.FormatServerDate(p.PayDate),
	)
}

// RowLabel подпись кнопки строки
func RowLabel(p model.Payment) string {
	return fmt.Sprintf("#%d · %s", p.ID, formatting.FormatMoney(p.Amount))
}

// RowActions меню действий строки платежа
func RowActions(p model.Payment) []models.InlineKeyboardButton {
	id := rowID(p)
	return []models.InlineKeyboardButton{
		keyboard.Button("✅ Подтвердить", Prefix+"_confirm:"+id),
		keyboard.Button("📅 Бронирование", bookings.Prefix+"_view:"+strconv.FormatInt(p.BookingID, 10)),
		keyboard.DeleteButton(Prefix + "_delete:" + id),
	}
}
