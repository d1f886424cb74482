package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CreateCountryGroupLink associates a country with a product group by their
// display names.
// POST /country-product-link?country=...&group=...
func (h *Handler) CreateCountryGroupLink(c *fiber.Ctx) error {
	country := c.Query("country")
	group := c.Query("group")
	if country == "" || group == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "country and group query parameters are required"})
	}
	link, err := h.Store.CreateCountryGroupLink(country, group)
	if err != nil {
		return h.storeError(c, err)
	}
	h.Log.Info().Str("country", country).Str("group", group).Msg("country-group link created")
	return c.JSON(link)
}

// CreateCountryGroupBuyerLink associates a buyer with a (country, group)
// pair by display names.
// POST /country-product-buyer-link?country=...&group=...&buyer=...
func (h *Handler) CreateCountryGroupBuyerLink(c *fiber.Ctx) error {
	country := c.Query("country")
	group := c.Query("group")
	buyer := c.Query("buyer")
	if country == "" || group == "" || buyer == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "country, group and buyer query parameters are required"})
	}
	link, err := h.Store.CreateCountryGroupBuyerLink(country, group, buyer)
	if err != nil {
		return h.storeError(c, err)
	}
	h.Log.Info().Str("country", country).Str("group", group).Str("buyer", buyer).Msg("country-group-buyer link created")
	return c.JSON(link)
}

// LinkOptions returns the current valid names for link creation, read live
// from the tables.
// GET /link-options
func (h *Handler) LinkOptions(c *fiber.Ctx) error {
	countries, err := h.Store.CountryNames()
	if err != nil {
		return h.storeError(c, err)
	}
	groups, err := h.Store.GroupNames()
	if err != nil {
		return h.storeError(c, err)
	}
	buyers, err := h.Store.BuyerSurnames()
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"countries": countries,
		"groups":    groups,
		"buyers":    buyers,
	})
}

// WhoBuying lists the buyers linked to a product group.
// GET /who-buying?group=...
func (h *Handler) WhoBuying(c *fiber.Ctx) error {
	group := c.Query("group")
	if group == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "group query parameter is required"})
	}
	buyers, err := h.Store.BuyersForGroup(group)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(buyers)
}
