package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"trade-directory/models"
)

// POST /products
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var input models.Product
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := h.Store.CreateProduct(&input); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(input)
}

// GET /products
func (h *Handler) GetProducts(c *fiber.Ctx) error {
	products, err := h.Store.ListProducts()
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(products)
}

// GET /products/:id
func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	product, err := h.Store.GetProduct(id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(product)
}

// PATCH /products/:id
func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var upd models.ProductUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	product, err := h.Store.UpdateProduct(id, upd)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(product)
}

// DELETE /products/:id
func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.Store.DeleteProduct(id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
