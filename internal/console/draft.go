package console

import (
	"fmt"
	"strconv"
	"strings"
)

// Поля черновиков форм (имена совпадают с JSON-полями запросов на сервер)
const (
	FieldStartDate           = "start_date"
	FieldEndDate             = "end_date"
	FieldCategoryCode        = "category_code"
	FieldCheckIn             = "check_in"
	FieldCheckOut            = "check_out"
	FieldRoomNumber          = "room_number"
	FieldBabyBed             = "baby_bed"
	FieldGuestName           = "guest_name"
	FieldGuestPassportNumber = "guest_passport_number"
	FieldGuestPhoneNumber    = "guest_phone_number"
	FieldPaymentMethodCode   = "payment_method_code"

	FieldReason     = "reason"
	FieldBookingID  = "booking_id"
	FieldCommentary = "commentary"
)

// Время заезда и выезда по умолчанию
const (
	CheckInHour  = "14:00"
	CheckOutHour = "12:00"
)

// CheckInFor время заезда по умолчанию для даты начала
func CheckInFor(date string) string {
	return date + "T" + CheckInHour
}

// CheckOutFor время выезда по умолчанию для даты окончания
func CheckOutFor(date string) string {
	return date + "T" + CheckOutHour
}

// Draft черновик формы: поле -> значение (строка или bool для флажков)
type Draft map[string]any

// String строковое значение поля или "" если поле не заполнено
func (d Draft) String(field string) string {
	if s, ok := d[field].(string); ok {
		return s
	}
	return ""
}

// Bool значение флажка
func (d Draft) Bool(field string) bool {
	switch v := d[field].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b || v == "on"
	default:
		return false
	}
}

// Has true если поле заполнено непустым значением
func (d Draft) Has(field string) bool {
	switch v := d[field].(type) {
	case string:
		return v != ""
	case nil:
		return false
	default:
		return true
	}
}

func (d Draft) clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// missing возвращает незаполненные обязательные поля в порядке required
func (d Draft) missing(required []string) []string {
	var out []string
	for _, field := range required {
		if !d.Has(field) {
			out = append(out, field)
		}
	}
	return out
}

// payload собирает тело запроса: intFields приводятся к int, boolFields к bool
func (d Draft) payload(intFields, boolFields []string) (map[string]any, error) {
	out := make(map[string]any, len(d)+len(boolFields))
	for k, v := range d {
		out[k] = v
	}
	for _, field := range intFields {
		if !d.Has(field) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(d.String(field)))
		if err != nil {
			return nil, &ValidationError{Field: field, Reason: "must be an integer"}
		}
		out[field] = n
	}
	for _, field := range boolFields {
		out[field] = d.Bool(field)
	}
	return out, nil
}

// ValidationError черновик не прошёл проверку перед отправкой
type ValidationError struct {
	Field   string
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return fmt.Sprintf("field %s %s", e.Field, e.Reason)
}
