package services

import (
	"context"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_MarkRead(t *testing.T) {
	tests := []struct {
		name       string
		userID     uint
		noteID     uint
		setupMocks func(*mocks.MockNotificationRepository)
		wantErr    error
	}{
		{
			name:   "owner marks own notification",
			userID: 4,
			noteID: 10,
			setupMocks: func(repo *mocks.MockNotificationRepository) {
				repo.On("FindByID", uint(10)).Return(&domain.Notification{ID: 10, UserID: 4}, nil)
				repo.On("MarkRead", uint(10)).Return(nil)
			},
		},
		{
			name:   "not found",
			userID: 4,
			noteID: 99,
			setupMocks: func(repo *mocks.MockNotificationRepository) {
				repo.On("FindByID", uint(99)).Return(nil, nil)
			},
			wantErr: ErrNotificationNotFound,
		},
		{
			name:   "someone else's notification",
			userID: 4,
			noteID: 10,
			setupMocks: func(repo *mocks.MockNotificationRepository) {
				repo.On("FindByID", uint(10)).Return(&domain.Notification{ID: 10, UserID: 7}, nil)
			},
			wantErr: ErrNotNotificationOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockNotificationRepository)
			tt.setupMocks(repo)

			svc := NewNotificationService(repo)
			err := svc.MarkRead(context.Background(), tt.userID, tt.noteID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "MarkRead", mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestNotificationService_ClearAll(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	repo.On("DeleteByUser", uint(4)).Return(nil)

	svc := NewNotificationService(repo)
	assert.NoError(t, svc.ClearAll(context.Background(), 4))
	repo.AssertExpectations(t)
}
