package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/candlewick/storefront/core"
	"github.com/candlewick/storefront/pkg/crypto"
)

func newTestAuthService(storage *FakeUserStorage) *AuthService {
	tokens := NewTokenService(testSecret, 24*time.Hour)
	return NewAuthService(storage, crypto.NewArgon2(), tokens, slog.New(slog.DiscardHandler))
}

// Requirement: Register creates a user, hashes the password and returns a
// bearer token bound to the new identity.
func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   core.RegisterInput
		setup   func(*FakeUserStorage)
		wantErr error
	}{
		{
			name: "creates user for valid input",
			input: core.RegisterInput{
				Email:     "alice@example.com",
				Password:  "Secret123!",
				FirstName: "Alice",
				LastName:  "Smith",
			},
		},
		{
			name:    "rejects empty email",
			input:   core.RegisterInput{Password: "Secret123!"},
			wantErr: core.ErrEmailRequired,
		},
		{
			name:    "rejects empty password",
			input:   core.RegisterInput{Email: "alice@example.com"},
			wantErr: core.ErrPasswordRequired,
		},
		{
			name:    "rejects short password",
			input:   core.RegisterInput{Email: "alice@example.com", Password: "short"},
			wantErr: core.ErrPasswordTooShort,
		},
		{
			name:  "rejects duplicate email",
			input: core.RegisterInput{Email: "alice@example.com", Password: "Secret123!"},
			setup: func(storage *FakeUserStorage) {
				_ = storage.CreateUser(context.Background(), &core.User{
					ID:       "existing-user",
					Email:    "alice@example.com",
					IsActive: true,
				})
			},
			wantErr: core.ErrUserExists,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeUserStorage()
			if test.setup != nil {
				test.setup(storage)
			}
			service := newTestAuthService(storage)

			// Act
			resp, err := service.Register(context.Background(), test.input)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if resp.User == nil || resp.User.ID == "" {
				t.Fatal("Register() should return user with ID")
			}
			if resp.User.PasswordHash == test.input.Password {
				t.Error("Register() must not store the plaintext password")
			}
			if resp.AccessToken == "" {
				t.Error("Register() should return token")
			}
			if resp.TokenType != "Bearer" {
				t.Errorf("token_type = %q, want %q", resp.TokenType, "Bearer")
			}
			if resp.ExpiresIn != 24*60*60 {
				t.Errorf("expires_in = %d, want %d", resp.ExpiresIn, 24*60*60)
			}
		})
	}
}

// Requirement: two concurrent registrations with the same email let exactly
// one through; the loser gets the duplicate-email conflict.
func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	service := newTestAuthService(storage)
	input := core.RegisterInput{Email: "race@example.com", Password: "Secret123!"}

	errs := make([]error, 2)
	var wg sync.WaitGroup

	// Act
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Register(context.Background(), input)
		}(i)
	}
	wg.Wait()

	// Assert
	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, core.ErrUserExists):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflict != 1 {
		t.Errorf("got %d successes and %d conflicts, want exactly 1 of each", ok, conflict)
	}
}

// Requirement: login with an unknown email and login with a wrong password
// yield the identical error, so responses leak nothing about which part
// failed.
func TestAuthService_Login(t *testing.T) {
	seedAlice := func(storage *FakeUserStorage, service *AuthService) {
		_, err := service.Register(context.Background(), core.RegisterInput{
			Email:    "alice@example.com",
			Password: "Secret123!",
		})
		if err != nil {
			t.Fatalf("seed register error = %v", err)
		}
	}

	tests := []struct {
		name    string
		input   core.LoginInput
		setup   func(*FakeUserStorage, *AuthService)
		wantErr error
	}{
		{
			name:  "valid credentials",
			input: core.LoginInput{Email: "alice@example.com", Password: "Secret123!"},
			setup: seedAlice,
		},
		{
			name:    "wrong password",
			input:   core.LoginInput{Email: "alice@example.com", Password: "WrongPass1!"},
			setup:   seedAlice,
			wantErr: core.ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			input:   core.LoginInput{Email: "nobody@example.com", Password: "Secret123!"},
			setup:   seedAlice,
			wantErr: core.ErrInvalidCredentials,
		},
		{
			name:  "deactivated user",
			input: core.LoginInput{Email: "alice@example.com", Password: "Secret123!"},
			setup: func(storage *FakeUserStorage, service *AuthService) {
				seedAlice(storage, service)
				user, _ := storage.GetUserByEmail(context.Background(), "alice@example.com")
				_ = storage.DeactivateUser(context.Background(), user.ID)
			},
			wantErr: core.ErrInvalidCredentials,
		},
		{
			name:    "empty email",
			input:   core.LoginInput{Password: "Secret123!"},
			wantErr: core.ErrEmailRequired,
		},
		{
			name:    "empty password",
			input:   core.LoginInput{Email: "alice@example.com"},
			wantErr: core.ErrPasswordRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeUserStorage()
			service := newTestAuthService(storage)
			if test.setup != nil {
				test.setup(storage, service)
			}

			// Act
			resp, err := service.Login(context.Background(), test.input)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if resp.AccessToken == "" {
				t.Error("Login() should return token")
			}
		})
	}
}

// Requirement: wrong-password and unknown-email failures carry the same
// message text.
func TestAuthService_Login_UnifiedFailureMessage(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	service := newTestAuthService(storage)
	_, err := service.Register(context.Background(), core.RegisterInput{
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	if err != nil {
		t.Fatalf("seed register error = %v", err)
	}

	// Act
	_, errWrongPassword := service.Login(context.Background(), core.LoginInput{
		Email: "alice@example.com", Password: "WrongPass1!",
	})
	_, errUnknownEmail := service.Login(context.Background(), core.LoginInput{
		Email: "nobody@example.com", Password: "Secret123!",
	})

	// Assert
	if errWrongPassword == nil || errUnknownEmail == nil {
		t.Fatal("both logins should fail")
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Errorf("messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

// Requirement: Refresh issues a new token with fresh timestamps; the old
// token is untouched and both verify independently.
func TestAuthService_Refresh(t *testing.T) {
	// Arrange
	storage := NewFakeUserStorage()
	tokens := NewTokenService(testSecret, 24*time.Hour)
	service := NewAuthService(storage, crypto.NewArgon2(), tokens, slog.New(slog.DiscardHandler))

	first, err := service.Register(context.Background(), core.RegisterInput{
		Email:    "alice@example.com",
		Password: "Secret123!",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// jwt iat has second resolution; wait so the refreshed token differs
	time.Sleep(1100 * time.Millisecond)

	// Act
	second, err := service.Refresh(first.User)

	// Assert
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if second.AccessToken == first.AccessToken {
		t.Error("Refresh() should issue a different token")
	}
	for _, token := range []string{first.AccessToken, second.AccessToken} {
		claims, err := tokens.Verify(token)
		if err != nil {
			t.Errorf("Verify(%q...) error = %v", token[:12], err)
			continue
		}
		if claims.Subject != first.User.ID {
			t.Errorf("subject = %q, want %q", claims.Subject, first.User.ID)
		}
	}
}
