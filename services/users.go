package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/candlewick/storefront/core"
)

// UserService covers the account operations that do not issue tokens:
// listing, profile updates and soft-deactivation.
type UserService struct {
	db     core.UserStorage
	logger *slog.Logger
}

func NewUserService(db core.UserStorage, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{db: db, logger: logger}
}

// ResolveActive maps a token subject to a live user record. A missing or
// deactivated account is reported as ErrUserInactive: from the gate's
// point of view the two are indistinguishable on purpose.
func (s *UserService) ResolveActive(ctx context.Context, id string) (*core.User, error) {
	user, err := s.db.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrUserInactive
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}

// List returns all active users.
func (s *UserService) List(ctx context.Context) ([]*core.User, error) {
	users, err := s.db.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update applies the non-nil profile fields and returns the fresh record.
func (s *UserService) Update(ctx context.Context, id string, input core.UpdateUserInput) (*core.User, error) {
	user, err := s.db.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.db.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Deactivate flips the active flag. The row is kept; every lookup used by
// authentication stops returning the user, so outstanding tokens fail at
// the gate from this moment on.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.db.GetUserByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.DeactivateUser(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	s.logger.Info("user deactivated", "user_id", id)
	return nil
}
