package complaints

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

// Prefix префикс callback data раздела жалоб
const Prefix = "cp"

// ListData callback открытия списка жалоб
const ListData = Prefix + "_open"

const reasonPreview = 40

func rowID(c model.Complaint) string {
	return strconv.FormatInt(c.ID, 10)
}

// ListConfig отображение списка жалоб
var ListConfig = common.ListConfig[model.Complaint]{
	Prefix:   Prefix,
	Title:    "📣 Жалобы",
	Empty:    "📭 Жалоб нет.",
	RowID:    rowID,
	RowLine:  RowLine,
	RowLabel: RowLabel,
	Actions:  RowActions,
	Noun:     formatting.PluralizeComplaints,
	Footer: []models.InlineKeyboardButton{
		keyboard.Button("➕ Новая жалоба", common.NewComplaintData),
	},
}

// DetailConfig отображение карточки жалобы
var DetailConfig = common.DetailConfig[model.Complaint]{
	Prefix:   Prefix,
	Title:    "📣 Жалоба",
	NotFound: "🔍 Жалоба не найдена.",
	BackData: ListData,
	Body:     DetailBody,
	Actions:  DetailActions,
}

// RowLine строка жалобы в тексте списка
func RowLine(c model.Complaint) string {
	status := formatting.GetStatusDisplay(c.Status)
	return fmt.Sprintf("#%d · №%d · %s · %s %s\n    %s",
		c.ID,
		c.Room,
		formatting.FormatServerDate(c.IssueDate),
		status.Emoji,
		html.EscapeString(status.Text),
		html.EscapeString(formatting.Truncate(c.Reason, reasonPreview)),
	)
}

// RowLabel подпись кнопки строки
func RowLabel(c model.Complaint) string {
	return fmt.Sprintf("#%d · №%d · %s", c.ID, c.Room, formatting.Truncate(c.Reason, 20))
}

// RowActions меню действий строки жалобы
func RowActions(c model.Complaint) []models.InlineKeyboardButton {
	id := rowID(c)
	return []models.InlineKeyboardButton{
		keyboard.Button("👁 Подробнее", Prefix+"_view:"+id),
		keyboard.Button("📅 Бронирование", bookingData(c)),
		resolveButton(c, model.ComplaintStatusInProgress, "🛠 В работу"),
		resolveButton(c, model.ComplaintStatusResolved, "✔️ Решена"),
		keyboard.DeleteButton(Prefix + "_delete:" + id),
	}
}

// DetailBody текст карточки жалобы
func DetailBody(c model.Complaint) string {
	status := formatting.GetStatusDisplay(c.Status)

	commentary := "—"
	if c.Commentary != nil && *c.Commentary != "" {
		commentary = html.EscapeString(*c.Commentary)
	}

	return fmt.Sprintf(
		"🔖 Жалоба: #%d\n"+
			"📆 Дата: %s\n"+
			"📅 Бронирование: #%d\n"+
			"🛏 Номер: %d\n"+
			"📊 Статус: %s %s\n\n"+
			"📝 Причина:\n%s\n\n"+
			"💬 Комментарий:\n%s",
		c.ID,
		formatting.FormatServerDateTime(c.IssueDate),
		c.BookingID,
		c.Room,
		status.Emoji,
		html.EscapeString(status.Text),
		html.EscapeString(c.Reason),
		commentary,
	)
}

// DetailActions кнопки карточки жалобы: переход к бронированию
func DetailActions(c model.Complaint) [][]models.InlineKeyboardButton {
	return [][]models.InlineKeyboardButton{
		{keyboard.Button(fmt.Sprintf("📅 Бронирование #%d", c.BookingID), bookingData(c))},
	}
}

func bookingData(c model.Complaint) string {
	return bookings.Prefix + "_view:" + strconv.FormatInt(c.BookingID, 10)
}

func resolveButton(c model.Complaint, statusCode int, label string) models.InlineKeyboardButton {
	return keyboard.Button(label, fmt.Sprintf("%s_resolve:%d:%d", Prefix, c.ID, statusCode))
}
