package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"trade-directory/models"
)

// CountryDetail is a country with its linked product groups, each exactly
// once.
type CountryDetail struct {
	models.Country
	ProductGroups []models.ProductGroup `json:"product_groups"`
}

// CreateCountry creates a new country
// POST /countries
func (h *Handler) CreateCountry(c *fiber.Ctx) error {
	var input models.Country
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := h.Store.CreateCountry(&input); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(input)
}

// GetCountries returns all countries
// GET /countries
func (h *Handler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.Store.ListCountries()
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(countries)
}

// GetCountry returns one country with its product groups
// GET /countries/:id
func (h *Handler) GetCountry(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	country, groups, err := h.Store.CountryWithGroups(id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(CountryDetail{Country: *country, ProductGroups: groups})
}

// UpdateCountry applies a partial update
// PATCH /countries/:id
func (h *Handler) UpdateCountry(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var upd models.CountryUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	country, err := h.Store.UpdateCountry(id, upd)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(country)
}

// DeleteCountry removes a country and its link rows
// DELETE /countries/:id
func (h *Handler) DeleteCountry(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.Store.DeleteCountry(id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
