package model

type Room struct {
	Number       int    `json:"number"`
	CategoryName string `json:"category_name"`
	StateName    string `json:"state_name"`
	Capacity     int    `json:"capacity"`
}

// Lookup элемент справочника (категория номера, способ оплаты)
type Lookup struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}
