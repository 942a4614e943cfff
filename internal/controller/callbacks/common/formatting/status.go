package formatting

import (
	"strings"

	"github.com/Freeeeeet/hotel_console/internal/model"
)

// StatusDisplay представляет отображение статуса
type StatusDisplay struct {
	Emoji string
	Text  string
}

// Названия статусов приходят из справочников сервера, поэтому emoji подбирается по ключевым словам
var statusKeywords = []struct {
	keywords []string
	emoji    string
}{
	{[]string{"отмен", "cancel"}, "❌"},
	{[]string{"засел", "check"}, "🏨"},
	{[]string{"выселен", "заверш", "complete", "решен", "resolved", "closed"}, "✔️"},
	{[]string{"не оплач", "unpaid"}, "💸"},
	{[]string{"оплач", "paid"}, "💰"},
	{[]string{"подтвержд", "confirm"}, "✅"},
	{[]string{"в работе", "progress"}, "🛠"},
	{[]string{"ожида", "pending", "нов", "open", "открыт"}, "⏳"},
	{[]string{"ремонт", "обслуж", "maintenance"}, "🔧"},
	{[]string{"свобод", "free", "available"}, "🟢"},
	{[]string{"занят", "occupied"}, "🔴"},
}

// GetStatusDisplay возвращает emoji и текст для названия статуса
func GetStatusDisplay(name string) StatusDisplay {
	text := strings.TrimSpace(name)
	if text == "" {
		return StatusDisplay{"❓", "Неизвестно"}
	}

	lower := strings.ToLower(text)
	for _, entry := range statusKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return StatusDisplay{entry.emoji, text}
			}
		}
	}
	return StatusDisplay{"•", text}
}

// ComplaintStatusName название перехода статуса жалобы для кнопок
func ComplaintStatusName(code int) string {
	switch code {
	case model.ComplaintStatusOpen:
		return "Открыта"
	case model.ComplaintStatusInProgress:
		return "В работе"
	case model.ComplaintStatusResolved:
		return "Решена"
	default:
		return "Неизвестно"
	}
}
