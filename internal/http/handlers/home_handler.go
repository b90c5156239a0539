package handlers

import (
	"chavecerta/internal/domain"
	"chavecerta/internal/services"
	"chavecerta/internal/ui"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Catalog *services.CatalogService
	Media   *MediaHandler
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	page, err := homePage(c, h.Catalog, domain.SearchForm{}, ui.CheckImage(h.Media.Exists))
	if err != nil {
		return err
	}
	return render(c, "home", fiber.Map{"Header": page.Header, "Page": page})
}

// homePage loads the landing page aggregates and featured listings.
func homePage(c *fiber.Ctx, catalog *services.CatalogService, form domain.SearchForm, cardOpts ...ui.CardOption) (ui.HomePage, error) {
	stats, err := catalog.Stats()
	if err != nil {
		return ui.HomePage{}, err
	}
	types, err := catalog.PropertyTypes()
	if err != nil {
		return ui.HomePage{}, err
	}
	featured, err := catalog.Featured()
	if err != nil {
		return ui.HomePage{}, err
	}
	return ui.NewHomePage(headerFor(c), form, stats, types, featured, cardOpts...), nil
}
