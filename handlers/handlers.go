package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"trade-directory/importer"
	"trade-directory/store"
)

type Handler struct {
	Store    *store.Store
	Importer *importer.Importer
	Log      zerolog.Logger
}

func New(st *store.Store, imp *importer.Importer, log zerolog.Logger) *Handler {
	return &Handler{Store: st, Importer: imp, Log: log}
}

// Routes registers every endpoint on the app.
func (h *Handler) Routes(app *fiber.App) {
	app.Post("/countries", h.CreateCountry)
	app.Get("/countries", h.GetCountries)
	app.Get("/countries/:id", h.GetCountry)
	app.Patch("/countries/:id", h.UpdateCountry)
	app.Delete("/countries/:id", h.DeleteCountry)

	app.Post("/product-groups", h.CreateProductGroup)
	app.Get("/product-groups", h.GetProductGroups)
	app.Get("/product-groups/:id", h.GetProductGroup)
	app.Patch("/product-groups/:id", h.UpdateProductGroup)
	app.Delete("/product-groups/:id", h.DeleteProductGroup)

	app.Post("/buyers", h.CreateBuyer)
	app.Get("/buyers", h.GetBuyers)
	app.Get("/buyers/:id", h.GetBuyer)
	app.Patch("/buyers/:id", h.UpdateBuyer)
	app.Delete("/buyers/:id", h.DeleteBuyer)

	app.Post("/products", h.CreateProduct)
	app.Get("/products", h.GetProducts)
	app.Get("/products/:id", h.GetProduct)
	app.Patch("/products/:id", h.UpdateProduct)
	app.Delete("/products/:id", h.DeleteProduct)

	app.Post("/country-product-link", h.CreateCountryGroupLink)
	app.Post("/country-product-buyer-link", h.CreateCountryGroupBuyerLink)
	app.Get("/link-options", h.LinkOptions)
	app.Get("/who-buying", h.WhoBuying)

	app.Post("/upload-product-groups-csv", h.UploadProductGroupsCSV)
	app.Post("/upload-countries-csv", h.UploadCountriesCSV)
}

// storeError maps store errors to client responses. Conflicts and bad
// references are client errors, not faults.
func (h *Handler) storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidReference):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.Log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// idParam parses the :id path parameter.
func idParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
