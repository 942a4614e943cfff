package dashboard

import (
	"fmt"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot/models"
)

// Prefix префикс callback data дашборда
const Prefix = "dash"

const (
	openData    = Prefix + "_open"
	refreshData = Prefix + "_refresh"
)

const title = "📊 <b>Показатели гостиницы</b>"

// BuildCaption подпись к диаграмме загрузки
func BuildCaption(m model.Metrics) string {
	return fmt.Sprintf(
		"%s\n\n"+
			"🏨 Загрузка: <b>%s</b>\n"+
			"🛏 Свободные номера: %d\n"+
			"🔧 На обслуживании: %d\n"+
			"📅 Текущие бронирования: %d\n"+
			"💸 Неоплаченные бронирования: %d\n"+
			"📣 Открытые жалобы: %d\n\n"+
			"💰 Выручка за 7 дней: %s\n"+
			"📈 RevPAR: %s\n"+
			"🆕 Новые гости за 7 дней: %d\n"+
			"📈 RevPAC: %s",
		title,
		formatting.FormatPercent(m.Occupancy),
		m.FreeRooms,
		m.RoomsUnderMaintenance,
		m.CurrentBookings,
		m.UnpaidBookings,
		m.OpenComplaints,
		formatting.FormatMoney(m.Revenue7Days),
		formatting.FormatMoney(m.RevPar),
		m.NewGuests7Days,
		formatting.FormatMoney(m.RevPac),
	)
}

// BuildKeyboard кнопки под дашбордом
func BuildKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.RefreshButton(refreshData), keyboard.MainMenuButton()).
		Build()
}
