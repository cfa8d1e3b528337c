package fiber

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/candlewick/storefront/core"
)

func (a *Adapter) createProduct(c fiber.Ctx) error {
	var input core.CreateProductInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error:      "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
	}

	product, err := a.s.Products.Create(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(product)
}

func (a *Adapter) listProducts(c fiber.Ctx) error {
	page, err := a.s.Products.List(c.Context(), listOptionsFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(page)
}

func (a *Adapter) getProduct(c fiber.Ctx) error {
	product, err := a.s.Products.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(product)
}

func (a *Adapter) updateProduct(c fiber.Ctx) error {
	var input core.UpdateProductInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error:      "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
	}

	product, err := a.s.Products.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(product)
}

func (a *Adapter) deleteProduct(c fiber.Ctx) error {
	if err := a.s.Products.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// listOptionsFromQuery reads pagination and filter parameters. Values that do
// not parse fall back to zero so the service applies its defaults; tags come
// comma-separated, e.g. ?tags=audio,wireless.
func listOptionsFromQuery(c fiber.Ctx) core.ListOptions {
	opts := core.ListOptions{
		Category: c.Query("category"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		opts.Limit = limit
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}
	return opts
}
