package handlers

import (
	"errors"

	applog "chavecerta/internal/log"
	"chavecerta/internal/services"
	"chavecerta/internal/ui"
	"chavecerta/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

// Toggle receives a favorite click. The browser sends the state it shows;
// the card flips it once and notifies the favorite service through its
// callback. Nothing is saved, so a reload starts unfavorited again.
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("imovelId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "imovelId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid imovelId"})
	}
	p, err := h.Favorites.Property(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	if err != nil {
		applog.Error(c, "favorite.toggle.fail", err, map[string]any{"imovel": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update favorite"})
	}

	var (
		ev   services.FavoriteEvent
		card *ui.PropertyCard
	)
	card = ui.NewPropertyCard(p,
		ui.Favorited(validate.Bool(c.FormValue("favorited"))),
		ui.OnFavorite(func(id int64) {
			ev = h.Favorites.Notify(id, card.IsFavorited())
			applog.Audit(c, "favorite.toggle", map[string]any{"imovel": id, "favorited": ev.Favorited, "event": ev.ID})
		}),
	)
	card.ToggleFavorite()

	return c.JSON(fiber.Map{"imovelId": p.ID, "favorited": card.IsFavorited(), "event": ev.ID})
}
