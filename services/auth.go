// Package services contains the orchestration layer: token issuance,
// credential verification and product catalog operations, all speaking to
// storage through the core ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/candlewick/storefront/core"
	"github.com/candlewick/storefront/pkg/crypto"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

// AuthService implements the three identity-issuing operations: register,
// login and refresh. Tokens are stateless, so none of these consult or
// mutate any session state beyond the user row itself.
type AuthService struct {
	db        core.UserStorage
	passwords crypto.PasswordHandler
	tokens    *TokenService
	logger    *slog.Logger
}

func NewAuthService(db core.UserStorage, passwords crypto.PasswordHandler, tokens *TokenService, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		db:        db,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a new user and signs them in. A duplicate email fails
// with ErrUserExists whether it is caught by the pre-check or by the
// store's unique constraint when two registrations race.
func (s *AuthService) Register(ctx context.Context, input core.RegisterInput) (*core.AuthResponse, error) {
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	existing, err := s.db.GetUserByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, core.ErrUserExists
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &core.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, core.ErrUserExists) {
			return nil, core.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)

	return s.issueFor(user)
}

// Login authenticates an active user by email and password. Unknown email
// and wrong password return the identical error so the response does not
// reveal which part failed.
func (s *AuthService) Login(ctx context.Context, input core.LoginInput) (*core.AuthResponse, error) {
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	user, err := s.db.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.passwords.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, core.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return s.issueFor(user)
}

// Refresh issues a brand-new token for an already-authenticated user.
// This is re-issuance, not rotation: the previous token stays valid until
// its own expiry.
func (s *AuthService) Refresh(user *core.User) (*core.AuthResponse, error) {
	return s.issueFor(user)
}

func (s *AuthService) issueFor(user *core.User) (*core.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

func validateCredentials(email, password string) error {
	if email == "" {
		return core.ErrEmailRequired
	}
	switch {
	case password == "":
		return core.ErrPasswordRequired
	case len(password) < minPasswordLength:
		return core.ErrPasswordTooShort
	case len(password) > maxPasswordLength:
		return core.ErrPasswordTooLong
	}
	return nil
}
