package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/candlewick/storefront/core"
)

func (a *Adapter) register(c fiber.Ctx) error {
	var input core.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error:      "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
	}

	result, err := a.s.Auth.Register(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input core.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error:      "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
	}

	result, err := a.s.Auth.Login(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(result)
}

func (a *Adapter) profile(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user":    currentUser(c),
		"message": "Profile retrieved successfully",
	})
}

// refresh issues a fresh token for the already-authenticated caller. The gate
// has verified the presented token, so no credential check happens here.
func (a *Adapter) refresh(c fiber.Ctx) error {
	result, err := a.s.Auth.Refresh(currentUser(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(result)
}

// logout is stateless: tokens are not tracked server-side, so the client is
// expected to discard its copy. The endpoint still sits behind the gate so an
// unauthenticated caller gets a 401 rather than a silent success.
func (a *Adapter) logout(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":    "Logged out successfully",
		"statusCode": http.StatusOK,
	})
}
