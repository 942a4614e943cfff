package formatting

import "github.com/Freeeeeet/hotel_console/internal/console"

var fieldLabels = map[string]string{
	console.FieldStartDate:           "Дата заезда",
	console.FieldEndDate:             "Дата выезда",
	console.FieldCategoryCode:        "Категория",
	console.FieldCheckIn:             "Время заезда",
	console.FieldCheckOut:            "Время выезда",
	console.FieldRoomNumber:          "Номер",
	console.FieldBabyBed:             "Детская кроватка",
	console.FieldGuestName:           "ФИО гостя",
	console.FieldGuestPassportNumber: "Паспорт",
	console.FieldGuestPhoneNumber:    "Телефон",
	console.FieldPaymentMethodCode:   "Способ оплаты",
	console.FieldReason:              "Причина",
	console.FieldBookingID:           "Бронирование",
	console.FieldCommentary:          "Комментарий",
}

// FieldLabel подпись поля формы на русском
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
