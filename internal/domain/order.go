package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	// OrderCode is the customer-facing identifier, distinct from the
	// numeric row id. Assigned once at creation, never changed.
	OrderCode string      `json:"order_code" gorm:"size:32;uniqueIndex;not null"`
	UserID    *uint       `json:"user_id" gorm:"index"` // nil means guest order
	Fullname  string      `json:"fullname" gorm:"size:140"`
	Email     string      `json:"email" gorm:"size:140"`
	Address   string      `json:"address" gorm:"size:300"`
	Total     float64     `json:"total" gorm:"default:0"`
	Status    OrderStatus `json:"status" gorm:"size:20;default:'pending'"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem freezes name and price at purchase time so the ledger stays an
// immutable historical record regardless of later catalog edits.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"size:140"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" gorm:"default:1"`
}
