package http

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required,min=1"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	// zero or negative removes the line
	Quantity int `json:"quantity"`
}

// CheckoutRequest carries contact/shipping plus payment fields. The
// card fields are validated for shape only; no gateway is involved.
type CheckoutRequest struct {
	Fullname   string `json:"fullname" binding:"required,max=140"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required,max=300"`
	CardNumber string `json:"card_number" binding:"required,numeric,min=12,max=19"`
	Expiry     string `json:"expiry" binding:"required,len=5"` // MM/YY
	CVC        string `json:"cvc" binding:"required,numeric,min=3,max=4"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required,max=140"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url" binding:"omitempty,max=300"`
	Category    string  `json:"category" binding:"omitempty,max=80"`
	Stock       int     `json:"stock" binding:"min=0"`
}

type CartLineResponse struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total float64            `json:"total"`
}
