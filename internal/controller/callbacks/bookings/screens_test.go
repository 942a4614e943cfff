package bookings

import (
	"testing"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func callbackData(buttons []models.InlineKeyboardButton) []string {
	data := make([]string, 0, len(buttons))
	for _, b := range buttons {
		data = append(data, b.CallbackData)
	}
	return data
}

func sampleBooking() model.Booking {
	discount := 500.0
	return model.Booking{
		ID:             42,
		StartDate:      "2025-06-01",
		EndDate:        "2025-06-03",
		Room:           101,
		BookingStatus:  "Подтверждено",
		BookingSum:     12500,
		DiscountAmount: &discount,
		TotalSum:       12000,
	}
}

func TestRowLine(t *testing.T) {
	line := RowLine(sampleBooking())
	assert.Contains(t, line, "#42")
	assert.Contains(t, line, "01.06.2025 – 03.06.2025")
	assert.Contains(t, line, "№101")
	assert.Contains(t, line, "✅ Подтверждено")
}

func TestRowActions(t *testing.T) {
	assert.Equal(t, []string{
		"bk_view:42",
		"bk_confirm:42",
		"nc_start:42",
		"bk_delete:42",
	}, callbackData(RowActions(sampleBooking())))
}

func TestDetailBody(t *testing.T) {
	body := DetailBody(sampleBooking())
	assert.Contains(t, body, "🕑 Заезд: —")
	assert.Contains(t, body, "🏷 Скидка: 500,00 ₽")
	assert.Contains(t, body, "<b>12 000,00 ₽</b>")
	assert.Contains(t, body, "Детская кроватка: нет")

	b := sampleBooking()
	checkIn := "2025-06-01T14:00"
	b.CheckIn = &checkIn
	b.DiscountAmount = nil
	b.BabyBed = true
	body = DetailBody(b)
	assert.Contains(t, body, "🕑 Заезд: 01.06.2025 14:00")
	assert.NotContains(t, body, "Скидка")
	assert.Contains(t, body, "Детская кроватка: да")
}

func TestDetailActionsOpenComplaintForm(t *testing.T) {
	rows := DetailActions(sampleBooking())
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"nc_start:42"}, callbackData(rows[0]))
}
