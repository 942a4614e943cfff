package model

// Коды статусов жалобы на стороне сервера
const (
	ComplaintStatusOpen       = 1
	ComplaintStatusInProgress = 2
	ComplaintStatusResolved   = 3
)

type Complaint struct {
	ID         int64   `json:"id"`
	Reason     string  `json:"reason"`
	Commentary *string `json:"commentary"`
	IssueDate  string  `json:"issue_date"`
	BookingID  int64   `json:"booking_id"`
	Status     string  `json:"status"`
	Room       int     `json:"room"`
}
