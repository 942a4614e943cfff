package formatting

import (
	"strings"
	"time"
)

// Форматы дат, которые присылает сервер
var serverLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseServerTime разбирает дату или дату со временем из ответа сервера
func ParseServerTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range serverLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatServerDate форматирует дату из ответа сервера; нераспознанное значение возвращается как есть
func FormatServerDate(value string) string {
	if t, ok := ParseServerTime(value); ok {
		return FormatDate(t)
	}
	if value == "" {
		return "—"
	}
	return value
}

// FormatServerDateTime форматирует дату со временем из ответа сервера
func FormatServerDateTime(value string) string {
	t, ok := ParseServerTime(value)
	switch {
	case !ok && value == "":
		return "—"
	case !ok:
		return value
	case len(strings.TrimSpace(value)) == len("2006-01-02"):
		return FormatDate(t)
	default:
		return FormatDateTime(t)
	}
}

// FormatDateRange форматирует период проживания: "01.06.2025 – 03.06.2025"
func FormatDateRange(start, end string) string {
	return FormatServerDate(start) + " – " + FormatServerDate(end)
}
