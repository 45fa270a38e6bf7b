package sqlite

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Save(n *domain.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepo) FindByUser(userID uint) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *notificationRepo) FindByID(id uint) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) MarkRead(id uint) error {
	return r.db.Model(&domain.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *notificationRepo) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Notification{}).Error
}
