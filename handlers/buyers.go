package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"trade-directory/models"
)

// POST /buyers
func (h *Handler) CreateBuyer(c *fiber.Ctx) error {
	var input models.Buyer
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := h.Store.CreateBuyer(&input); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(input)
}

// GET /buyers
func (h *Handler) GetBuyers(c *fiber.Ctx) error {
	buyers, err := h.Store.ListBuyers()
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(buyers)
}

// GET /buyers/:id
func (h *Handler) GetBuyer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	buyer, err := h.Store.GetBuyer(id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(buyer)
}

// PATCH /buyers/:id
func (h *Handler) UpdateBuyer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var upd models.BuyerUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	buyer, err := h.Store.UpdateBuyer(id, upd)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(buyer)
}

// DELETE /buyers/:id
func (h *Handler) DeleteBuyer(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.Store.DeleteBuyer(id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
