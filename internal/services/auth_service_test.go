package services

import (
	"context"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/infra/session"
	"storefront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("duplicate email rejected before mutation", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", "jane@example.com").Return(&domain.User{ID: 1}, nil)

		svc := NewAuthService(users, session.NewMemoryTokenStore())
		_, err := svc.Register(context.Background(), "jane", "jane@example.com", "secret")

		assert.ErrorIs(t, err, ErrEmailTaken)
		users.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", "jane@example.com").Return(nil, nil)
		users.On("Save", mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash != "secret" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
		})).Return(nil)

		svc := NewAuthService(users, session.NewMemoryTokenStore())
		u, err := svc.Register(context.Background(), "jane", "jane@example.com", "secret")

		assert.NoError(t, err)
		assert.Equal(t, "jane", u.Username)
		users.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues a token resolvable back to the user", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		stored := &domain.User{ID: 8, Email: "jane@example.com", PasswordHash: hashOf(t, "secret")}
		users.On("FindByEmail", "jane@example.com").Return(stored, nil)
		users.On("FindByID", uint(8)).Return(stored, nil)

		svc := NewAuthService(users, session.NewMemoryTokenStore())
		token, u, err := svc.Login(context.Background(), "jane@example.com", "secret")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(8), u.ID)

		current, err := svc.CurrentUser(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, uint(8), current.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", "jane@example.com").Return(&domain.User{
			ID: 8, PasswordHash: hashOf(t, "secret"),
		}, nil)

		svc := NewAuthService(users, session.NewMemoryTokenStore())
		_, _, err := svc.Login(context.Background(), "jane@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", "nobody@example.com").Return(nil, nil)

		svc := NewAuthService(users, session.NewMemoryTokenStore())
		_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	users := new(mocks.MockUserRepository)
	stored := &domain.User{ID: 8, Email: "jane@example.com", PasswordHash: hashOf(t, "secret")}
	users.On("FindByEmail", "jane@example.com").Return(stored, nil)

	svc := NewAuthService(users, session.NewMemoryTokenStore())
	token, _, err := svc.Login(context.Background(), "jane@example.com", "secret")
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), token))

	current, err := svc.CurrentUser(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, current)
}
