package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"trade-directory/models"
)

// ProductGroupDetail is a group with its linked countries.
type ProductGroupDetail struct {
	models.ProductGroup
	Countries []models.Country `json:"countries"`
}

// POST /product-groups
func (h *Handler) CreateProductGroup(c *fiber.Ctx) error {
	var input models.ProductGroup
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := h.Store.CreateProductGroup(&input); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(input)
}

// GET /product-groups
func (h *Handler) GetProductGroups(c *fiber.Ctx) error {
	groups, err := h.Store.ListProductGroups()
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(groups)
}

// GET /product-groups/:id
func (h *Handler) GetProductGroup(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	group, countries, err := h.Store.ProductGroupWithCountries(id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(ProductGroupDetail{ProductGroup: *group, Countries: countries})
}

// PATCH /product-groups/:id
func (h *Handler) UpdateProductGroup(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var upd models.ProductGroupUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	group, err := h.Store.UpdateProductGroup(id, upd)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(group)
}

// DELETE /product-groups/:id
func (h *Handler) DeleteProductGroup(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.Store.DeleteProductGroup(id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
