package formatting

// pluralize выбирает форму слова для числа: one (1, 21), few (2-4, 22-24), many (остальные)
func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeBookings возвращает правильное склонение слова "бронирование"
func PluralizeBookings(count int) string {
	return pluralize(count, "бронирование", "бронирования", "бронирований")
}

// PluralizeComplaints возвращает правильное склонение слова "жалоба"
func PluralizeComplaints(count int) string {
	return pluralize(count, "жалоба", "жалобы", "жалоб")
}

// PluralizePayments возвращает правильное склонение слова "платёж"
func PluralizePayments(count int) string {
	return pluralize(count, "платёж", "платежа", "платежей")
}

// PluralizeRooms возвращает правильное склонение слова "номер"
func PluralizeRooms(count int) string {
	return pluralize(count, "номер", "номера", "номеров")
}
