package payments

import (
	"testing"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRowLine(t *testing.T) {
	line := RowLine(model.Payment{
		ID:         3,
		BookingID:  42,
		PayDate:    "2025-06-01",
		StatusName: "Не оплачен",
		Amount:     12000,
	})
	assert.Contains(t, line, "#3 · бронь #42 · 12 000,00 ₽")
	assert.Contains(t, line, "💸 Не оплачен")
	assert.Contains(t, line, "—")
}

func TestRowActions(t *testing.T) {
	var data []string
	for _, b := range RowActions(model.Payment{ID: 3, BookingID: 42}) {
		data = append(data, b.CallbackData)
	}
	assert.Equal(t, []string{"pm_confirm:3", "bk_view:42", "pm_delete:3"}, data)
}
