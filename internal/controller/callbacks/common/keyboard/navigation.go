package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// Callback data общих кнопок навигации
const (
	MainMenuData = "menu_main"
	NoopData     = "noop"
)

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Назад", callbackData)
}

// MainMenuButton создаёт кнопку "В главное меню"
func MainMenuButton() models.InlineKeyboardButton {
	return Button("🏠 Меню", MainMenuData)
}

// RefreshButton создаёт кнопку "Обновить"
func RefreshButton(callbackData string) models.InlineKeyboardButton {
	return Button("🔄 Обновить", callbackData)
}

// CancelButton создаёт кнопку "Отмена"
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Отмена", callbackData)
}

// DeleteButton создаёт кнопку "Удалить"
func DeleteButton(callbackData string) models.InlineKeyboardButton {
	return Button("🗑 Удалить", callbackData)
}

// Checkbox подпись кнопки-флажка
func Checkbox(label string, checked bool) string {
	if checked {
		return "☑️ " + label
	}
	return "⬜️ " + label
}

// Selected подпись варианта выбора с отметкой выбранного
func Selected(label string, selected bool) string {
	if selected {
		return "✅ " + label
	}
	return label
}

// AddMainMenuButton добавляет кнопку "В главное меню" к builder
func (b *Builder) AddMainMenuButton() *Builder {
	return b.Row(MainMenuButton())
}
