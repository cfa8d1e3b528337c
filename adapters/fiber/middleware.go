package fiber

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/candlewick/storefront/core"
)

// Locals keys set by the auth gate for downstream handlers.
const (
	localUser   = "user"
	localClaims = "claims"
)

// requireAuth guards protected routes. A request passes only when it carries
// a well-formed Bearer header, the token verifies, and the subject resolves
// to an active user. Each failure mode gets its own 401 body so clients can
// tell a missing header from an expired token.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return writeError(c, core.ErrMissingAuthHeader)
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return writeError(c, core.ErrInvalidAuthHeader)
	}

	claims, err := a.s.Tokens.Verify(token)
	if err != nil {
		return writeError(c, err)
	}

	// The token is looked up against storage on every request in case the
	// user was deactivated after it was issued.
	user, err := a.s.Users.ResolveActive(c.Context(), claims.Subject)
	if err != nil {
		return writeError(c, err)
	}

	c.Locals(localUser, user)
	c.Locals(localClaims, claims)

	return c.Next()
}

// currentUser returns the authenticated user stored by requireAuth.
func currentUser(c fiber.Ctx) *core.User {
	user, _ := c.Locals(localUser).(*core.User)
	return user
}
