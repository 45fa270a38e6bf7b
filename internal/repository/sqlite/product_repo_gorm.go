package sqlite

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Save(p *domain.Product) error {
	return r.db.Create(p).Error
}

func (r *productRepo) FindByID(id uint) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAll(query, category string) ([]domain.Product, error) {
	tx := r.db.Model(&domain.Product{})
	if query != "" {
		tx = tx.Where("name LIKE ?", "%"+query+"%")
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var out []domain.Product
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Categories() ([]string, error) {
	var out []string
	err := r.db.Model(&domain.Product{}).Distinct("category").Pluck("category", &out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(p *domain.Product) error {
	return r.db.Save(p).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

// Single conditional UPDATE so concurrent checkouts cannot both pass a
// read-side stock check and jointly overdraw.
func (r *productRepo) DecrementStockIfAvailable(id uint, qty int) (bool, error) {
	res := r.db.Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) DecrementStock(id uint, qty int) error {
	return r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty)).Error
}
