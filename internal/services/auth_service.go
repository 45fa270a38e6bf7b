package services

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/infra/session"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  repository.UserRepository
	tokens session.TokenStore
}

func NewAuthService(users repository.UserRepository, tokens session.TokenStore) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register rejects duplicate emails before any mutation.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login issues an opaque session token on a correct email/password
// pair. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.tokens.Put(ctx, token, u.ID); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// CurrentUser resolves a session token to its user, or (nil, nil) when
// the token is unknown or expired.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	id, ok, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return s.users.FindByID(id)
}
