package handlers

import (
	"errors"

	"chavecerta/internal/domain"
	"chavecerta/internal/log"
	"chavecerta/internal/services"
	"chavecerta/internal/ui"
	"chavecerta/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	Catalog *services.CatalogService
	Media   *MediaHandler
}

var typeHeadings = map[string]string{
	domain.CategoryApartment:  "Apartamentos",
	domain.CategoryHouse:      "Casas",
	domain.CategoryStudio:     "Kitnets",
	domain.CategoryCommercial: "Comerciais",
}

// List shows the whole catalog as list cards. The tipo query only picks the
// heading; layout=grid switches the card arrangement and favorito=0 hides
// the favorite button.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	props, err := h.Catalog.List(1, 50)
	if err != nil {
		return err
	}
	opts := []ui.CardOption{
		ui.WithVariant(ui.ParseVariant(c.Query("layout", "list"))),
		ui.WithFavorite(validate.Bool(c.Query("favorito", "1"))),
		ui.CheckImage(h.Media.Exists),
	}
	cards := make([]*ui.PropertyCard, 0, len(props))
	for _, p := range props {
		cards = append(cards, ui.NewPropertyCard(p, opts...))
	}
	heading := "Imóveis para alugar"
	if t, ok := typeHeadings[c.Query("tipo")]; ok {
		heading = t + " para alugar"
	}
	return render(c, "imoveis", fiber.Map{
		"Title":   heading + " - ChaveCerta",
		"Heading": heading,
		"Cards":   cards,
		"Count":   len(cards),
	})
}

func (h *PropertyHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "imovel"})
		return notFound(c, "Este imóvel não está mais disponível")
	}
	p, err := h.Catalog.GetProperty(id)
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c, "Este imóvel não está mais disponível")
	}
	if err != nil {
		return err
	}
	return render(c, "imovel", fiber.Map{
		"Title": p.Title + " - ChaveCerta",
		"Card":  ui.NewPropertyCard(p, ui.CheckImage(h.Media.Exists)),
	})
}

// APIList serves the mock catalog as JSON.
func (h *PropertyHandler) APIList(c *fiber.Ctx) error {
	props, err := h.Catalog.List(1, 50)
	if err != nil {
		log.Error(c, "api.imoveis.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load listings"})
	}
	return c.JSON(props)
}

func (h *PropertyHandler) APIDetail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Catalog.GetProperty(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	if err != nil {
		log.Error(c, "api.imoveis.detail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load listing"})
	}
	return c.JSON(p)
}
