package services

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("notification belongs to another user")
)

// NotificationService serves the user-facing notification list; rows
// are produced by the Notifier on order transitions.
type NotificationService struct {
	notifs repository.NotificationRepository
}

func NewNotificationService(notifs repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifs: notifs}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return s.notifs.FindByUser(userID)
}

// MarkRead flips is_read on the caller's own notification only.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	n, err := s.notifs.FindByID(notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.UserID != userID {
		return ErrNotNotificationOwner
	}
	return s.notifs.MarkRead(notificationID)
}

func (s *NotificationService) ClearAll(ctx context.Context, userID uint) error {
	return s.notifs.DeleteByUser(userID)
}
