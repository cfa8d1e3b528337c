package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/candlewick/storefront/core"
)

func writeError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	return c.Status(status).JSON(core.ErrorResponse{
		Error:      err.Error(),
		StatusCode: status,
	})
}

// mapErrorToStatus maps domain error types to HTTP status codes.
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrMissingAuthHeader),
		errors.Is(err, core.ErrInvalidAuthHeader),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrTokenExpired),
		errors.Is(err, core.ErrTokenNotActive),
		errors.Is(err, core.ErrUserInactive):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrProductNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrPasswordTooLong),
		errors.Is(err, core.ErrNameRequired),
		errors.Is(err, core.ErrInvalidPrice):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
