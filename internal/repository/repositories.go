package repository

import (
	"storefront/internal/domain"
)

// Finders return (nil, nil) when the row does not exist; services map
// that to their own not-found sentinels.

type ProductRepository interface {
	Save(p *domain.Product) error
	FindByID(id uint) (*domain.Product, error)
	// FindAll filters by name substring and/or exact category; empty
	// arguments mean no filter.
	FindAll(query, category string) ([]domain.Product, error)
	Categories() ([]string, error)
	Update(p *domain.Product) error
	Delete(id uint) error

	// DecrementStockIfAvailable atomically decrements stock by qty only
	// when stock >= qty, reporting whether a row was updated. Used at
	// checkout, where insufficient stock is a silent no-op.
	DecrementStockIfAvailable(id uint, qty int) (bool, error)

	// DecrementStock decrements without a floor check. Used on the
	// confirm path, which tolerates negative stock.
	DecrementStock(id uint, qty int) error
}

type OrderRepository interface {
	// Create persists the order and its items in one transaction.
	Create(o *domain.Order) error
	FindByID(id uint) (*domain.Order, error)
	FindByUser(userID uint) ([]domain.Order, error)
	FindRecent(limit int) ([]domain.Order, error)
	CodeExists(code string) (bool, error)
	UpdateStatus(id uint, status domain.OrderStatus) error
	// Delete removes the order and all of its items.
	Delete(id uint) error
}

type UserRepository interface {
	Save(u *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
}

type NotificationRepository interface {
	Save(n *domain.Notification) error
	FindByUser(userID uint) ([]domain.Notification, error)
	FindByID(id uint) (*domain.Notification, error)
	MarkRead(id uint) error
	DeleteByUser(userID uint) error
}
