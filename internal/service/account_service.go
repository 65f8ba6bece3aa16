package service

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/sirupsen/logrus"
)

// AccountService owns the registered-user directory and the single current
// session. Credentials are compared as plaintext exact matches: this demo
// trust model is preserved deliberately (see README), do not add hashing.
type AccountService struct {
	store repository.Store
}

func NewAccountService(store repository.Store) *AccountService {
	return &AccountService{store: store}
}

// Register creates the account and activates a session for it; registration
// implies login. The username match is case-sensitive and exact.
func (s *AccountService) Register(ctx context.Context, username, password, phone string) (*domain.UserAccount, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := users[username]; exists {
		return nil, ErrDuplicateUsername
	}

	account := domain.UserAccount{
		Username: username,
		Password: password,
		Phone:    phone,
	}
	users[username] = account

	if err := s.store.Put(ctx, repository.KeyUsers, users); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, repository.KeyCurrentUser, username); err != nil {
		return nil, err
	}

	return &account, nil
}

// Login activates the session for username on an exact credential match.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}

	account, exists := users[username]
	if !exists || account.Password != password {
		return ErrInvalidCredentials
	}

	return s.store.Put(ctx, repository.KeyCurrentUser, username)
}

// Logout clears the session unconditionally; a second call is a no-op.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, repository.KeyCurrentUser)
}

// CurrentUser returns the active username, or "" when logged out.
func (s *AccountService) CurrentUser(ctx context.Context) (string, error) {
	var username string
	err := s.store.Get(ctx, repository.KeyCurrentUser, &username)
	switch {
	case err == nil:
		return username, nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return "", nil
	case errors.Is(err, repository.ErrCorruptRecord):
		logrus.WithError(err).Warn("session record corrupt, treating as logged out")
		return "", nil
	default:
		return "", err
	}
}

func (s *AccountService) loadUsers(ctx context.Context) (map[string]domain.UserAccount, error) {
	users := make(map[string]domain.UserAccount)
	err := s.store.Get(ctx, repository.KeyUsers, &users)
	switch {
	case err == nil:
		return users, nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return users, nil
	case errors.Is(err, repository.ErrCorruptRecord):
		logrus.WithError(err).Warn("users record corrupt, falling back to empty directory")
		return make(map[string]domain.UserAccount), nil
	default:
		return nil, err
	}
}
