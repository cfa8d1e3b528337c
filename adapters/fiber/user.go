package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/candlewick/storefront/core"
)

func (a *Adapter) listUsers(c fiber.Ctx) error {
	users, err := a.s.Users.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(users)
}

func (a *Adapter) updateMe(c fiber.Ctx) error {
	var input core.UpdateUserInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error:      "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
	}

	user, err := a.s.Users.Update(c.Context(), currentUser(c).ID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(user)
}

func (a *Adapter) deactivateMe(c fiber.Ctx) error {
	if err := a.s.Users.Deactivate(c.Context(), currentUser(c).ID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Account deactivated successfully",
	})
}
