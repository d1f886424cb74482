package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"trade-directory/importer"
)

// UploadProductGroupsCSV imports product groups from a semicolon-delimited
// CSV file. The response reports inserted rows and per-row failures.
// POST /upload-product-groups-csv (multipart, field "csvfile")
func (h *Handler) UploadProductGroupsCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("csvfile")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "csvfile form field is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file"})
	}
	defer f.Close()

	records, err := importer.Parse(f, importer.ProductGroupColumns)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	outcome := h.Importer.ImportProductGroups(records)
	h.Log.Info().
		Str("file", fh.Filename).
		Int("inserted", outcome.Inserted).
		Int("failed", len(outcome.Failures)).
		Msg("product group import finished")
	return c.JSON(outcome)
}

// UploadCountriesCSV imports countries from a semicolon-delimited CSV file.
// POST /upload-countries-csv (multipart, field "csvfile")
func (h *Handler) UploadCountriesCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("csvfile")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "csvfile form field is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file"})
	}
	defer f.Close()

	records, err := importer.Parse(f, importer.CountryColumns)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	outcome := h.Importer.ImportCountries(records)
	h.Log.Info().
		Str("file", fh.Filename).
		Int("inserted", outcome.Inserted).
		Int("failed", len(outcome.Failures)).
		Msg("country import finished")
	return c.JSON(outcome)
}
