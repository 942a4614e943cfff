package common

import (
	"fmt"
	"html"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot/models"
)

// Callback data пунктов главного меню
const (
	DashboardData    = "dash_open"
	BookingsData     = "bk_open"
	ComplaintsData   = "cp_open"
	PaymentsData     = "pm_open"
	RoomsData        = "rm_open"
	NewBookingData   = "nb_start"
	NewComplaintData = "nc_start"
	LogoutData       = "auth_logout"
)

// HelpText справка по командам
const HelpText = "ℹ️ <b>Справка</b>\n\n" +
	"/start - Главное меню\n" +
	"/login - Войти\n" +
	"/logout - Выйти\n" +
	"/whoami - Текущий пользователь\n\n" +
	"/dashboard - Показатели гостиницы\n" +
	"/bookings - Бронирования\n" +
	"/complaints - Жалобы\n" +
	"/payments - Платежи\n" +
	"/rooms - Номера\n\n" +
	"/newbooking - Новое бронирование\n" +
	"/newcomplaint - Новая жалоба\n" +
	"/cancel - Отменить ввод"

// WelcomeText приветствие до входа в систему
const WelcomeText = "👋 Добро пожаловать в консоль администратора гостиницы!\n\n" +
	"Для работы нужно войти под учётной записью сотрудника."

// BuildMainMenu формирует главное меню
func BuildMainMenu(username string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🏨 <b>Главное меню</b>\n\n👤 %s\n\nВыберите раздел:", html.EscapeString(username))

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📊 Дашборд", DashboardData)).
		Row(
			keyboard.Button("📅 Бронирования", BookingsData),
			keyboard.Button("📣 Жалобы", ComplaintsData),
		).
		Row(
			keyboard.Button("💳 Платежи", PaymentsData),
			keyboard.Button("🛏 Номера", RoomsData),
		).
		Row(
			keyboard.Button("➕ Бронирование", NewBookingData),
			keyboard.Button("➕ Жалоба", NewComplaintData),
		).
		Row(keyboard.Button("🚪 Выйти", LogoutData)).
		Build()

	return text, kb
}

// BuildWhoAmI описание текущей сессии
func BuildWhoAmI(username string, expiresAt string) string {
	text := fmt.Sprintf("👤 Вы вошли как <b>%s</b>", html.EscapeString(username))
	if expiresAt != "" {
		text += "\n⌛ Сессия действует до " + expiresAt
	}
	return text
}
