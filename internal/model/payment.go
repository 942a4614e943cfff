package model

type Payment struct {
	ID         int64   `json:"id"`
	BookingID  int64   `json:"booking_id"`
	PayDate    string  `json:"pay_date"`
	MethodName string  `json:"method_name"`
	StatusName string  `json:"status_name"`
	Amount     float64 `json:"amount"`
}
