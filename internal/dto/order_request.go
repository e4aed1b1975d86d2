package dto

type OrderRequest struct {
	UserID          string        `json:"userId"`
	Items           []interface{} `json:"items"`
	ShippingAddress interface{}   `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentDetails  interface{}   `json:"paymentDetails"`
	Total           float64       `json:"total"`
	Status          string        `json:"status"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}
