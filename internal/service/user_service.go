package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// CreateUser creates a new user with the specified username and email.
	// Returns store.ErrEmailExists or store.ErrUsernameExists if the user
	// collides with an existing one.
	CreateUser(ctx context.Context, username, email string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	// Returns (nil, nil) if the user does not exist.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// GetAllUsers retrieves every user ordered by creation time.
	GetAllUsers(ctx context.Context) ([]*domain.User, error)

	// DeleteUser removes a user by their ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	txRunner  store.TxRunner
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, txRunner store.TxRunner, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		txRunner:  txRunner,
		logger:    logger.With("component", "user_service"),
	}
}

// CreateUser creates a new user and persists it in its own scoped session.
func (s *UserServiceImpl) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	user, err := domain.NewUser(username, email)
	if err != nil {
		s.logger.Warn("user payload failed domain validation",
			"error", err,
			"username", username)
		return nil, NewValidationError(err.Error(), err)
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("duplicate user rejected",
				"username", username,
				"error", err)
			return nil, err
		}
		s.logger.Error("failed to create user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// GetUser retrieves a user by ID, returning (nil, nil) when absent.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
			return nil, nil
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// GetAllUsers retrieves every user.
func (s *UserServiceImpl) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// DeleteUser removes a user by ID in its own scoped session.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		s.logger.Error("failed to delete user",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
