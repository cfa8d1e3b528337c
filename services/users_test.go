package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/candlewick/storefront/core"
)

func seedUser(t *testing.T, db *FakeUserStorage, id, email string) *core.User {
	t.Helper()

	user := &core.User{ID: id, Email: email, PasswordHash: "x", IsActive: true}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// Requirement: a missing and a deactivated account are indistinguishable to
// the caller; both resolve to ErrUserInactive.
func TestUserService_ResolveActive(t *testing.T) {
	db := NewFakeUserStorage()
	service := NewUserService(db, slog.New(slog.DiscardHandler))
	seedUser(t, db, "u1", "live@example.com")
	seedUser(t, db, "u2", "dead@example.com")
	if err := db.DeactivateUser(context.Background(), "u2"); err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "active user resolves", id: "u1", wantErr: nil},
		{name: "deactivated user", id: "u2", wantErr: core.ErrUserInactive},
		{name: "unknown id", id: "nope", wantErr: core.ErrUserInactive},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			user, err := service.ResolveActive(context.Background(), test.id)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("ResolveActive() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil && (user == nil || user.ID != test.id) {
				t.Errorf("ResolveActive() user = %+v, want ID %s", user, test.id)
			}
		})
	}
}

func TestUserService_UpdateMergesFields(t *testing.T) {
	db := NewFakeUserStorage()
	service := NewUserService(db, slog.New(slog.DiscardHandler))
	user := seedUser(t, db, "u1", "merge@example.com")
	user.FirstName = "Ada"
	user.LastName = "Lovelace"
	if err := db.UpdateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to prepare user: %v", err)
	}

	first := "Grace"
	updated, err := service.Update(context.Background(), "u1", core.UpdateUserInput{FirstName: &first})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.FirstName != "Grace" {
		t.Errorf("first name = %q, want Grace", updated.FirstName)
	}
	if updated.LastName != "Lovelace" {
		t.Errorf("last name = %q, want untouched Lovelace", updated.LastName)
	}
}

func TestUserService_DeactivateHidesUser(t *testing.T) {
	db := NewFakeUserStorage()
	service := NewUserService(db, slog.New(slog.DiscardHandler))
	seedUser(t, db, "u1", "bye@example.com")

	if err := service.Deactivate(context.Background(), "u1"); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	if _, err := db.GetUserByID(context.Background(), "u1"); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("GetUserByID after deactivation error = %v, want ErrUserNotFound", err)
	}
	users, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 0 {
		t.Errorf("len(users) = %d, want 0", len(users))
	}

	// deactivating twice reports the account as gone
	if err := service.Deactivate(context.Background(), "u1"); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("second Deactivate() error = %v, want ErrUserNotFound", err)
	}
}
