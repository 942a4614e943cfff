package model

// Metrics агрегированные показатели для главного экрана
type Metrics struct {
	Occupancy             float64 `json:"occupancy"`
	UnpaidBookings        int     `json:"unpaid_bookings"`
	CurrentBookings       int     `json:"current_bookings"`
	OpenComplaints        int     `json:"open_complaints"`
	FreeRooms             int     `json:"free_rooms"`
	RoomsUnderMaintenance int     `json:"rooms_under_maintenance"`
	Revenue7Days          float64 `json:"revenue_7_days"`
	RevPar                float64 `json:"rev_par"`
	NewGuests7Days        int     `json:"new_guests_7_days"`
	RevPac                float64 `json:"rev_pac"`
}
