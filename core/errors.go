package core

import "errors"

// User errors
var (
	ErrUserExists   = errors.New("user with this email already exists") // 409 Conflict
	ErrUserNotFound = errors.New("user not found")                      // 404 Not Found
	ErrUserInactive = errors.New("user not found or inactive")          // 401
)

// Credential errors
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password") // 401
)

// Token errors. The gate needs these kept apart to produce the right
// user-facing message.
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")                            // 401
	ErrInvalidAuthHeader = errors.New("invalid authorization format, expected 'Bearer <token>'") // 401
	ErrInvalidToken      = errors.New("invalid token")                                           // 401
	ErrTokenExpired      = errors.New("token has expired")                                       // 401
	ErrTokenNotActive    = errors.New("token not active")                                        // 401
)

// Product errors
var (
	ErrProductNotFound = errors.New("product not found") // 404
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")            // 400
	ErrPasswordRequired = errors.New("password is required")         // 400
	ErrPasswordTooShort = errors.New("password is too short")        // 400
	ErrPasswordTooLong  = errors.New("password is too long")         // 400
	ErrNameRequired     = errors.New("name cannot be empty")         // 400
	ErrInvalidPrice     = errors.New("price must be greater than 0") // 400
)

// Config errors (server-side configuration)
var (
	ErrStorageRequired = errors.New("storage adapter is required") // 500
	ErrHTTPRequired    = errors.New("http adapter is required")    // 500
	ErrSecretRequired  = errors.New("signing secret is required")  // 500
	ErrSecretTooShort  = errors.New("signing secret too short")    // 500
)
