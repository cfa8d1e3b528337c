// Package fiber exposes the storefront services over HTTP using Fiber v3.
package fiber

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/candlewick/storefront"
	"github.com/candlewick/storefront/services"
)

type Adapter struct {
	app *fiber.App
	s   *storefront.Storefront
}

var _ storefront.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

// RegisterRoutes mounts every endpoint from the service route table under the
// base path. Endpoints not marked public get the auth gate middleware.
func (a *Adapter) RegisterRoutes(s *storefront.Storefront) error {
	a.s = s

	handlers := map[string]fiber.Handler{
		"health":        a.health,
		"register":      a.register,
		"login":         a.login,
		"profile":       a.profile,
		"refresh":       a.refresh,
		"logout":        a.logout,
		"listUsers":     a.listUsers,
		"updateMe":      a.updateMe,
		"deactivateMe":  a.deactivateMe,
		"createProduct": a.createProduct,
		"listProducts":  a.listProducts,
		"getProduct":    a.getProduct,
		"updateProduct": a.updateProduct,
		"deleteProduct": a.deleteProduct,
	}

	api := a.app.Group(s.BasePath)
	for _, ep := range services.BaseEndpoints() {
		handler, ok := handlers[ep.Metadata.OperationID]
		if !ok {
			return fmt.Errorf("no handler registered for operation %q", ep.Metadata.OperationID)
		}
		if ep.Public {
			api.Add([]string{ep.Method}, ep.Path, handler)
		} else {
			api.Add([]string{ep.Method}, ep.Path, a.requireAuth, handler)
		}
	}

	return nil
}

func (a *Adapter) health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
