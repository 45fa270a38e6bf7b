package domain

// OrderEvent is the payload published on order lifecycle transitions
// (order.created / order.confirmed / order.cancelled).
type OrderEvent struct {
	OrderID   uint        `json:"orderId"`
	OrderCode string      `json:"orderCode"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	Guest     bool        `json:"guest"`
}
