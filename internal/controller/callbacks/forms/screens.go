package forms

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot/models"
)

// Префиксы callback data форм
const (
	BookingPrefix   = "nb"
	ComplaintPrefix = "nc"
)

// BookingPickerPageSize бронирований на странице выбора в форме жалобы
const BookingPickerPageSize = 6

const empty = "—"

// ========================
// Booking form
// ========================

// BuildBookingForm формирует экран формы бронирования.
// awaiting - поле, для которого ждём текст; inputErr - ошибка последнего ввода.
func BuildBookingForm(snap console.BookingFormSnapshot, awaiting string, inputErr error) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("➕ <b>Новое бронирование</b>\n\n")

	kb := keyboard.NewBuilder()
	cancel := keyboard.CancelButton(BookingPrefix + "_cancel")

	switch snap.Status {
	case console.StatusIdle, console.StatusLoading:
		sb.WriteString("⏳ Загрузка справочников...")
		kb.Row(cancel)
		return sb.String(), kb.Build()
	case console.StatusFailed:
		sb.WriteString(common.ErrorMessage(snap.LookupErr))
		kb.Row(keyboard.Button("🔄 Повторить", common.NewBookingData), cancel)
		return sb.String(), kb.Build()
	}

	d := snap.Draft
	fmt.Fprintf(&sb, "📅 %s: %s\n", formatting.FieldLabel(console.FieldStartDate), formatting.FormatServerDate(d.String(console.FieldStartDate)))
	fmt.Fprintf(&sb, "📅 %s: %s\n", formatting.FieldLabel(console.FieldEndDate), formatting.FormatServerDate(d.String(console.FieldEndDate)))
	fmt.Fprintf(&sb, "🏷 %s: %s\n", formatting.FieldLabel(console.FieldCategoryCode), lookupName(snap.Categories, d.String(console.FieldCategoryCode)))
	fmt.Fprintf(&sb, "🛏 %s: %s\n", formatting.FieldLabel(console.FieldRoomNumber), orEmpty(d.String(console.FieldRoomNumber)))
	fmt.Fprintf(&sb, "🕑 %s: %s\n", formatting.FieldLabel(console.FieldCheckIn), formatting.FormatServerDateTime(d.String(console.FieldCheckIn)))
	fmt.Fprintf(&sb, "🕛 %s: %s\n", formatting.FieldLabel(console.FieldCheckOut), formatting.FormatServerDateTime(d.String(console.FieldCheckOut)))
	fmt.Fprintf(&sb, "👤 %s: %s\n", formatting.FieldLabel(console.FieldGuestName), escaped(d.String(console.FieldGuestName)))
	fmt.Fprintf(&sb, "🪪 %s: %s\n", formatting.FieldLabel(console.FieldGuestPassportNumber), escaped(d.String(console.FieldGuestPassportNumber)))
	fmt.Fprintf(&sb, "📞 %s: %s\n", formatting.FieldLabel(console.FieldGuestPhoneNumber), escaped(d.String(console.FieldGuestPhoneNumber)))
	fmt.Fprintf(&sb, "💳 %s: %s\n", formatting.FieldLabel(console.FieldPaymentMethodCode), lookupName(snap.PaymentMethods, d.String(console.FieldPaymentMethodCode)))
	fmt.Fprintf(&sb, "👶 %s: %s\n", formatting.FieldLabel(console.FieldBabyBed), yesNo(d.Bool(console.FieldBabyBed)))

	sb.WriteString("\n" + freeRoomsLine(snap) + "\n")
	writeStatus(&sb, snap.Submitting, snap.SubmitErr, awaiting, inputErr)

	kb.Row(
		fieldButton(BookingPrefix, "📅 Заезд", console.FieldStartDate),
		fieldButton(BookingPrefix, "📅 Выезд", console.FieldEndDate),
	)
	kb.Grid(lookupButtons(BookingPrefix+"_cat:", snap.Categories, d.String(console.FieldCategoryCode)), 2)
	kb.Grid(roomButtons(snap.FreeRooms, d.String(console.FieldRoomNumber)), 4)
	kb.Row(
		fieldButton(BookingPrefix, "🕑 Время заезда", console.FieldCheckIn),
		fieldButton(BookingPrefix, "🕛 Время выезда", console.FieldCheckOut),
	)
	kb.Row(
		fieldButton(BookingPrefix, "👤 ФИО", console.FieldGuestName),
		fieldButton(BookingPrefix, "🪪 Паспорт", console.FieldGuestPassportNumber),
		fieldButton(BookingPrefix, "📞 Телефон", console.FieldGuestPhoneNumber),
	)
	kb.Grid(lookupButtons(BookingPrefix+"_pay:", snap.PaymentMethods, d.String(console.FieldPaymentMethodCode)), 2)
	kb.Row(keyboard.Button(keyboard.Checkbox("Детская кроватка", d.Bool(console.FieldBabyBed)), BookingPrefix+"_bed"))
	kb.Row(keyboard.Button("✅ Создать", BookingPrefix+"_submit"), cancel)

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

func freeRoomsLine(snap console.BookingFormSnapshot) string {
	switch {
	case snap.FreeRoomsLoading:
		return "⏳ Ищем свободные номера..."
	case snap.FreeRoomsErr != nil:
		return "⚠️ Свободные номера не загрузились: " + strings.TrimPrefix(common.ErrorMessage(snap.FreeRoomsErr), "❌ ")
	case snap.FreeRooms == nil:
		return "ℹ️ Укажите даты и категорию, чтобы выбрать номер"
	case len(snap.FreeRooms) == 0:
		return "🚫 Свободных номеров на эти даты нет"
	default:
		n := len(snap.FreeRooms)
		return fmt.Sprintf("🛏 Свободно: %d %s", n, formatting.PluralizeRooms(n))
	}
}

func roomButtons(rooms []int, selected string) []models.InlineKeyboardButton {
	buttons := make([]models.InlineKeyboardButton, 0, len(rooms))
	for _, room := range rooms {
		value := strconv.Itoa(room)
		buttons = append(buttons, keyboard.Button(
			keyboard.Selected("№"+value, value == selected),
			BookingPrefix+"_room:"+value,
		))
	}
	return buttons
}

func lookupButtons(prefix string, items []model.Lookup, selected string) []models.InlineKeyboardButton {
	buttons := make([]models.InlineKeyboardButton, 0, len(items))
	for _, item := range items {
		code := strconv.Itoa(item.Code)
		buttons = append(buttons, keyboard.Button(keyboard.Selected(item.Name, code == selected), prefix+code))
	}
	return buttons
}

func lookupName(items []model.Lookup, code string) string {
	if code == "" {
		return empty
	}
	for _, item := range items {
		if strconv.Itoa(item.Code) == code {
			return html.EscapeString(item.Name)
		}
	}
	return html.EscapeString(code)
}

// ========================
// Complaint form
// ========================

// BuildComplaintForm формирует экран формы жалобы со страницей page списка бронирований
func BuildComplaintForm(snap console.ComplaintFormSnapshot, page int, awaiting string, inputErr error) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("➕ <b>Новая жалоба</b>\n\n")

	kb := keyboard.NewBuilder()
	cancel := keyboard.CancelButton(ComplaintPrefix + "_cancel")

	switch snap.Status {
	case console.StatusIdle, console.StatusLoading:
		sb.WriteString("⏳ Загрузка бронирований...")
		kb.Row(cancel)
		return sb.String(), kb.Build()
	case console.StatusFailed:
		sb.WriteString(common.ErrorMessage(snap.LookupErr))
		kb.Row(keyboard.Button("🔄 Повторить", common.NewComplaintData), cancel)
		return sb.String(), kb.Build()
	}

	d := snap.Draft
	selected := d.String(console.FieldBookingID)
	fmt.Fprintf(&sb, "📅 %s: %s\n", formatting.FieldLabel(console.FieldBookingID), selectedBooking(snap.Bookings, selected))
	fmt.Fprintf(&sb, "📝 %s: %s\n", formatting.FieldLabel(console.FieldReason), escaped(d.String(console.FieldReason)))
	fmt.Fprintf(&sb, "💬 %s: %s\n", formatting.FieldLabel(console.FieldCommentary), escaped(d.String(console.FieldCommentary)))

	if len(snap.Bookings) == 0 {
		sb.WriteString("\n📭 Нет бронирований, к которым можно привязать жалобу\n")
	} else {
		sb.WriteString("\nВыберите бронирование:\n")
	}
	writeStatus(&sb, snap.Submitting, snap.SubmitErr, awaiting, inputErr)

	if len(snap.Bookings) > 0 {
		totalPages := keyboard.TotalPages(len(snap.Bookings), BookingPickerPageSize)
		page = keyboard.ClampPage(page, totalPages)
		start, end := keyboard.PageBounds(page, BookingPickerPageSize, len(snap.Bookings))

		for _, b := range snap.Bookings[start:end] {
			id := strconv.FormatInt(b.ID, 10)
			kb.Row(keyboard.Button(keyboard.Selected(BookingLabel(b), id == selected), ComplaintPrefix+"_bk:"+id))
		}
		kb.AddPagination(ComplaintPrefix+"_page:", page, totalPages)
	}

	kb.Row(
		fieldButton(ComplaintPrefix, "📝 Причина", console.FieldReason),
		fieldButton(ComplaintPrefix, "💬 Комментарий", console.FieldCommentary),
	)
	kb.Row(keyboard.Button("✅ Создать", ComplaintPrefix+"_submit"), cancel)

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// BookingLabel подпись бронирования в списке выбора
func BookingLabel(b model.Booking) string {
	label := fmt.Sprintf("#%d · №%d · %s", b.ID, b.Room, formatting.FormatServerDate(b.StartDate))
	if b.GuestName != "" {
		label += " · " + formatting.Truncate(b.GuestName, 20)
	}
	return label
}

func selectedBooking(bookings []model.Booking, id string) string {
	if id == "" {
		return empty
	}
	for _, b := range bookings {
		if strconv.FormatInt(b.ID, 10) == id {
			return html.EscapeString(BookingLabel(b))
		}
	}
	return "#" + html.EscapeString(id)
}

// ========================
// Shared
// ========================

func fieldButton(prefix, label, field string) models.InlineKeyboardButton {
	return keyboard.Button(label, prefix+"_field:"+field)
}

// writeStatus дописывает состояние отправки и подсказку ввода
func writeStatus(sb *strings.Builder, submitting bool, submitErr error, awaiting string, inputErr error) {
	if submitting {
		sb.WriteString("\n⏳ Отправка...\n")
	}
	if submitErr != nil {
		sb.WriteString("\n" + common.ErrorMessage(submitErr) + "\n")
	}
	if awaiting != "" {
		if inputErr != nil {
			sb.WriteString("\n" + common.ErrorMessage(inputErr))
		}
		sb.WriteString("\n" + Prompt(awaiting) + "\nОтправьте «" + ClearValue + "», чтобы очистить поле.\n")
	}
}

func escaped(value string) string {
	if value == "" {
		return empty
	}
	return html.EscapeString(value)
}

func orEmpty(value string) string {
	if value == "" {
		return empty
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
