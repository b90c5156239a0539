package handlers

import (
	"chavecerta/internal/log"
	"chavecerta/internal/services"
	"chavecerta/internal/ui"
	"chavecerta/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
	Search  *services.SearchService
	Media   *MediaHandler
}

// Submit handles the hero search form. The values are logged and the landing
// page is shown again with them filled in; no query runs.
func (h *SearchHandler) Submit(c *fiber.Ctx) error {
	form, dropped := validate.SearchForm(func(k string) string { return c.FormValue(k) })
	if len(dropped) > 0 {
		log.Security(c, "validation.drop", map[string]any{"fields": dropped})
	}
	sub := h.Search.Submit(form)
	log.Info(c, "search.submit", sub.LogFields())

	page, err := homePage(c, h.Catalog, form, ui.CheckImage(h.Media.Exists))
	if err != nil {
		return err
	}
	page.Submitted = true
	return render(c, "home", fiber.Map{"Header": page.Header, "Page": page})
}
