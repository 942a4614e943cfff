package bookings

import (
	"fmt"
	"html"
	"strconv"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot/models"
)

// Prefix префикс callback data раздела бронирований
const Prefix = "bk"

// ListData callback открытия списка бронирований
const ListData = Prefix + "_open"

func rowID(b model.Booking) string {
	return strconv.FormatInt(b.ID, 10)
}

// ListConfig отображение списка бронирований
var ListConfig = common.ListConfig[model.Booking]{
	Prefix:   Prefix,
	Title:    "📅 Бронирования",
	Empty:    "📭 Бронирований пока нет.",
	RowID:    rowID,
	RowLine:  RowLine,
	RowLabel: RowLabel,
	Actions:  RowActions,
	Noun:     formatting.PluralizeBookings,
	Footer: []models.InlineKeyboardButton{
		keyboard.Button("➕ Новое бронирование", common.NewBookingData),
	},
}

// DetailConfig отображение карточки бронирования
var DetailConfig = common.DetailConfig[model.Booking]{
	Prefix:   Prefix,
	Title:    "📅 Бронирование",
	NotFound: "🔍 Бронирование не найдено.",
	BackData: ListData,
	Body:     DetailBody,
	Actions:  DetailActions,
}

// RowLine строка бронирования в тексте списка
func RowLine(b model.Booking) string {
	status := formatting.GetStatusDisplay(b.BookingStatus)
	return fmt.Sprintf("#%d · %s · №%d · %s %s",
		b.ID,
		formatting.FormatDateRange(b.StartDate, b.EndDate),
		b.Room,
		status.Emoji,
		html.EscapeString(status.Text),
	)
}

// RowLabel подпись кнопки строки
func RowLabel(b model.Booking) string {
	return fmt.Sprintf("#%d · №%d · %s", b.ID, b.Room, formatting.FormatServerDate(b.StartDate))
}

// RowActions меню действий строки бронирования
func RowActions(b model.Booking) []models.InlineKeyboardButton {
	id := rowID(b)
	return []models.InlineKeyboardButton{
		keyboard.Button("👁 Подробнее", Prefix+"_view:"+id),
		keyboard.Button("🏨 Заселить", Prefix+"_confirm:"+id),
		keyboard.Button("📣 Жалоба", common.NewComplaintData+":"+id),
		keyboard.DeleteButton(Prefix + "_delete:" + id),
	}
}

// DetailBody текст карточки бронирования
func DetailBody(b model.Booking) string {
	status := formatting.GetStatusDisplay(b.BookingStatus)

	text := fmt.Sprintf(
		"🔖 Номер брони: #%d\n"+
			"📅 Период: %s\n"+
			"🕑 Заезд: %s\n"+
			"🕛 Выезд: %s\n"+
			"🛏 Номер: %d\n"+
			"👶 Детская кроватка: %s\n"+
			"📊 Статус: %s %s\n\n"+
			"💰 Стоимость: %s\n",
		b.ID,
		formatting.FormatDateRange(b.StartDate, b.EndDate),
		optionalDateTime(b.CheckIn),
		optionalDateTime(b.CheckOut),
		b.Room,
		yesNo(b.BabyBed),
		status.Emoji,
		html.EscapeString(status.Text),
		formatting.FormatMoney(b.BookingSum),
	)

	if b.DiscountAmount != nil && *b.DiscountAmount != 0 {
		text += "🏷 Скидка: " + formatting.FormatMoney(*b.DiscountAmount) + "\n"
	}
	text += "💵 Итого: <b>" + formatting.FormatMoney(b.TotalSum) + "</b>"

	return text
}

// DetailActions кнопки карточки бронирования
func DetailActions(b model.Booking) [][]models.InlineKeyboardButton {
	return [][]models.InlineKeyboardButton{
		{keyboard.Button("📣 Оформить жалобу", common.NewComplaintData+":"+rowID(b))},
	}
}

func optionalDateTime(value *string) string {
	if value == nil {
		return "—"
	}
	return formatting.FormatServerDateTime(*value)
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
