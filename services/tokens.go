package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/candlewick/storefront/core"
)

// DefaultTokenTTL is how long an issued token stays valid unless a TTL
// override is configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the signed assertion carried by every session token.
// Subject holds the user ID; validity is signature + time checks only,
// there is no server-side revocation list.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService signs and verifies the compact session token format
// (HS256 JWT over a single shared secret). Both operations are pure
// computations and never touch storage.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

// Issue signs a fresh token for the given subject. The claims are
// immutable once signed; exp is always iat + TTL.
func (ts *TokenService) Issue(subject, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify parses the token, checks the signature against the shared secret
// and validates the time claims. Failure kinds are kept distinct: expiry,
// not-yet-valid, and everything else (bad signature, garbage input).
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, core.ErrInvalidToken
		}
		return ts.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, core.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, core.ErrTokenNotActive
		default:
			return nil, core.ErrInvalidToken
		}
	}

	if !token.Valid || claims.Subject == "" {
		return nil, core.ErrInvalidToken
	}

	return claims, nil
}
