package model

type Booking struct {
	ID             int64    `json:"id"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	CheckIn        *string  `json:"check_in"`
	CheckOut       *string  `json:"check_out"`
	Room           int      `json:"room"`
	BabyBed        bool     `json:"baby_bed"`
	BookingStatus  string   `json:"booking_status"`
	BookingSum     float64  `json:"booking_sum"`
	DiscountAmount *float64 `json:"discount_amount"`
	TotalSum       float64  `json:"total_sum"`

	// Есть не во всех ответах сервера, используется только в выборе брони для жалобы
	GuestName string `json:"guest_name,omitempty"`
}
