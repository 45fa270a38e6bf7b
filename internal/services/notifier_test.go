package services

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func registeredOrder() *domain.Order {
	return &domain.Order{
		ID:        11,
		OrderCode: "AA11BB22CC",
		UserID:    uintPtr(4),
		Fullname:  "Jane Doe",
		Email:     "jane@example.com",
		Total:     49.99,
		Status:    domain.StatusConfirmed,
	}
}

func guestOrderForNotify() *domain.Order {
	o := registeredOrder()
	o.UserID = nil
	o.Email = "guest@example.com"
	return o
}

func TestNotifier_RegisteredUserGetsStoredRecord(t *testing.T) {
	notifs := new(mocks.MockNotificationRepository)
	fallback := new(mocks.MockFallbackLog)

	notifs.On("Save", mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 4 && n.Message == "Your order #11 has been confirmed."
	})).Return(nil)

	n := NewNotifier(nil, notifs, fallback, zap.NewNop())
	res := n.OrderConfirmed(context.Background(), registeredOrder())

	assert.Equal(t, OutcomeSkipped, res.Email) // no transport configured
	assert.Equal(t, OutcomeStored, res.Record)
	fallback.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	notifs.AssertExpectations(t)
}

func TestNotifier_GuestGetsFallbackLogLine(t *testing.T) {
	notifs := new(mocks.MockNotificationRepository)
	fallback := new(mocks.MockFallbackLog)

	fallback.On("Append", "guest@example.com", "Order #11 confirmed for Jane Doe").Return(nil)

	n := NewNotifier(nil, notifs, fallback, zap.NewNop())
	res := n.OrderConfirmed(context.Background(), guestOrderForNotify())

	assert.Equal(t, OutcomeLogged, res.Record)
	notifs.AssertNotCalled(t, "Save", mock.Anything)
	fallback.AssertExpectations(t)
}

func TestNotifier_EmailAttemptedFirstWhenConfigured(t *testing.T) {
	mail := new(mocks.MockMailer)
	notifs := new(mocks.MockNotificationRepository)
	fallback := new(mocks.MockFallbackLog)

	mail.On("Send", "jane@example.com", "Order #11 Confirmed!", mock.AnythingOfType("string")).Return(nil)
	notifs.On("Save", mock.AnythingOfType("*domain.Notification")).Return(nil)

	n := NewNotifier(mail, notifs, fallback, zap.NewNop())
	res := n.OrderConfirmed(context.Background(), registeredOrder())

	assert.Equal(t, OutcomeSent, res.Email)
	assert.Equal(t, OutcomeStored, res.Record)
	mail.AssertExpectations(t)
}

func TestNotifier_EmailFailureDoesNotSuppressRecordBranch(t *testing.T) {
	mail := new(mocks.MockMailer)
	notifs := new(mocks.MockNotificationRepository)
	fallback := new(mocks.MockFallbackLog)

	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	notifs.On("Save", mock.AnythingOfType("*domain.Notification")).Return(nil)

	n := NewNotifier(mail, notifs, fallback, zap.NewNop())
	res := n.OrderConfirmed(context.Background(), registeredOrder())

	assert.Equal(t, OutcomeFailed, res.Email)
	assert.Equal(t, OutcomeStored, res.Record)
}

func TestNotifier_RecordFailureIsSwallowedIntoOutcome(t *testing.T) {
	notifs := new(mocks.MockNotificationRepository)
	fallback := new(mocks.MockFallbackLog)

	notifs.On("Save", mock.AnythingOfType("*domain.Notification")).Return(errors.New("insert failed"))

	n := NewNotifier(nil, notifs, fallback, zap.NewNop())
	res := n.OrderConfirmed(context.Background(), registeredOrder())

	assert.Equal(t, OutcomeFailed, res.Record)
}

func TestNotifier_CancellationMessages(t *testing.T) {
	mail := new(mocks.MockMailer)
	notifs := new(mocks.MockNotificationRepository)
	fallback := new(mocks.MockFallbackLog)

	mail.On("Send", "guest@example.com", "Order #11 Cancelled", mock.AnythingOfType("string")).Return(nil)
	fallback.On("Append", "guest@example.com", "Order #11 cancelled for Jane Doe").Return(nil)

	n := NewNotifier(mail, notifs, fallback, zap.NewNop())
	o := guestOrderForNotify()
	o.Status = domain.StatusCancelled
	res := n.OrderCancelled(context.Background(), o)

	assert.Equal(t, OutcomeSent, res.Email)
	assert.Equal(t, OutcomeLogged, res.Record)
	mail.AssertExpectations(t)
	fallback.AssertExpectations(t)
}
