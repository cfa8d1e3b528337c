// Package storefront wires the storage and HTTP adapters to the domain
// services and exposes the assembled application.
package storefront

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/candlewick/storefront/core"
	"github.com/candlewick/storefront/pkg/crypto"
	"github.com/candlewick/storefront/services"
)

// interfaces
type (
	Storage        = core.Storage
	UserStorage    = core.UserStorage
	ProductStorage = core.ProductStorage

	PasswordHandler = crypto.PasswordHandler
)

type (
	User    = core.User
	Product = core.Product
)

const (
	defaultBasePath  = "/api"
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2     = crypto.NewArgon2
	BaseEndpoints = services.BaseEndpoints
)

var (
	ErrUserExists         = core.ErrUserExists
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrProductNotFound    = core.ErrProductNotFound
)

var (
	ErrMissingAuthHeader = core.ErrMissingAuthHeader
	ErrInvalidAuthHeader = core.ErrInvalidAuthHeader
	ErrInvalidToken      = core.ErrInvalidToken
	ErrTokenExpired      = core.ErrTokenExpired
	ErrTokenNotActive    = core.ErrTokenNotActive
	ErrUserInactive      = core.ErrUserInactive
)

var (
	ErrStorageRequired = core.ErrStorageRequired
	ErrHTTPRequired    = core.ErrHTTPRequired
	ErrSecretRequired  = core.ErrSecretRequired
	ErrSecretTooShort  = core.ErrSecretTooShort
)

// HTTPAdapter mounts the application's routes onto some HTTP framework.
type HTTPAdapter interface {
	RegisterRoutes(s *Storefront) error
}

type Config struct {
	// Secret signs session tokens. Required, minimum 32 characters.
	Secret string

	// TokenTTL is how long issued tokens stay valid. Defaults to 24h.
	TokenTTL time.Duration

	Database Storage
	HTTP     HTTPAdapter

	// PasswordHasher defaults to argon2id with the standard parameters.
	PasswordHasher PasswordHandler

	// BasePath prefixes every route. Defaults to "/api".
	BasePath string

	Logger *slog.Logger
}

type Storefront struct {
	Tokens   *services.TokenService
	Auth     *services.AuthService
	Users    *services.UserService
	Products *services.ProductService

	BasePath string
	Logger   *slog.Logger
}

func New(config Config) (*Storefront, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Database == nil {
		return nil, ErrStorageRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tokens := services.NewTokenService([]byte(config.Secret), config.TokenTTL)

	s := &Storefront{
		Tokens:   tokens,
		Auth:     services.NewAuthService(config.Database, passwordHasher, tokens, logger),
		Users:    services.NewUserService(config.Database, logger),
		Products: services.NewProductService(config.Database, logger),
		BasePath: basePath,
		Logger:   logger,
	}

	if err := config.HTTP.RegisterRoutes(s); err != nil {
		return nil, err
	}

	return s, nil
}
