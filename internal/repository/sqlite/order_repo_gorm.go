package sqlite

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(o *domain.Order) error {
	// gorm inserts the items association in the same transaction
	if err := r.db.Create(o).Error; err != nil {
		return err
	}
	if o.ID == 0 {
		return errors.New("order saved but id not assigned")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(userID uint) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindRecent(limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").Order("id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) CodeExists(code string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).Where("order_code = ?", code).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *orderRepo) UpdateStatus(id uint, status domain.OrderStatus) error {
	return r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// items first, then the order row (foreign key constraint)
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
}
