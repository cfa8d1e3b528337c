package storefront

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/candlewick/storefront/services"
)

type fakeStorage struct {
	*services.FakeUserStorage
	*services.FakeProductStorage
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		FakeUserStorage:    services.NewFakeUserStorage(),
		FakeProductStorage: services.NewFakeProductStorage(),
	}
}

// dummy HTTP Adapter
type dummyHTTP struct {
	registered *Storefront
	err        error
}

func (d *dummyHTTP) RegisterRoutes(s *Storefront) error {
	d.registered = s
	return d.err
}

func TestNewWiresServicesAndRegistersRoutes(t *testing.T) {
	storage := newFakeStorage()
	adapter := &dummyHTTP{}

	cfg := Config{
		Secret:   "01234567890123456789012345678901",
		Database: storage,
		HTTP:     adapter,
	}

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if adapter.registered != s {
		t.Fatal("expected RegisterRoutes to receive the assembled Storefront")
	}
	if s.BasePath != "/api" {
		t.Fatalf("expected default base path /api, got %q", s.BasePath)
	}
	if s.Tokens.TTL() != 24*time.Hour {
		t.Fatalf("expected default token TTL of 24h, got %v", s.Tokens.TTL())
	}
	if s.Auth == nil || s.Users == nil || s.Products == nil {
		t.Fatal("expected all services to be constructed")
	}
}

func TestNewShouldReturnErrSecretTooShort(t *testing.T) {
	cfg := Config{
		Secret:   "short-secret",
		Database: newFakeStorage(),
		HTTP:     &dummyHTTP{},
	}

	_, err := New(cfg)
	if !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort sentinel (errors.Is), got %v", err)
	}
	// Message should include the minimum length
	if !strings.Contains(err.Error(), "32") {
		t.Fatalf("expected error message to include minimum length, got %v", err)
	}
}

func TestNewConfigValidation(t *testing.T) {
	storage := newFakeStorage()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "missing secret",
			cfg:     Config{Database: storage, HTTP: &dummyHTTP{}},
			wantErr: ErrSecretRequired,
		},
		{
			name:    "missing storage",
			cfg:     Config{Secret: "01234567890123456789012345678901", HTTP: &dummyHTTP{}},
			wantErr: ErrStorageRequired,
		},
		{
			name:    "missing http adapter",
			cfg:     Config{Secret: "01234567890123456789012345678901", Database: storage},
			wantErr: ErrHTTPRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.cfg)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestNewPropagatesRegisterRoutesError(t *testing.T) {
	wantErr := errors.New("route collision")
	cfg := Config{
		Secret:   "01234567890123456789012345678901",
		Database: newFakeStorage(),
		HTTP:     &dummyHTTP{err: wantErr},
	}

	_, err := New(cfg)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected RegisterRoutes error to propagate, got %v", err)
	}
}
