package formatting

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney форматирует сумму в рублях: 12500.5 -> "12 500,50 ₽"
func FormatMoney(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteRune(' ')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative && cents > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s,%02d ₽", sign, grouped.String(), frac)
}

// FormatPercent форматирует процент с одним знаком после запятой
func FormatPercent(value float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", value), ".", ",", 1)
}
