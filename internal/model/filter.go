package model

// FreeRoomsFilter параметры запроса свободных номеров
type FreeRoomsFilter struct {
	StartDate    string
	EndDate      string
	CategoryCode string
}

// Complete true, когда заполнены все три поля
func (f FreeRoomsFilter) Complete() bool {
	return f.StartDate != "" && f.EndDate != "" && f.CategoryCode != ""
}
