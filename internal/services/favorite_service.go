package services

import (
	"time"

	"chavecerta/internal/domain"

	"github.com/google/uuid"
)

// FavoriteEvent is what a parent receives when a card is favorited or
// unfavorited. Nothing is stored.
type FavoriteEvent struct {
	ID         string    `json:"id"`
	PropertyID int64     `json:"imovelId"`
	Favorited  bool      `json:"favorited"`
	At         time.Time `json:"at"`
}

type FavoriteService struct {
	Catalog *CatalogService
}

func NewFavoriteService(catalog *CatalogService) *FavoriteService {
	return &FavoriteService{Catalog: catalog}
}

// Property resolves the listing a favorite click refers to.
func (s *FavoriteService) Property(id int64) (domain.Property, error) {
	return s.Catalog.GetProperty(id)
}

func (s *FavoriteService) Notify(id int64, favorited bool) FavoriteEvent {
	return FavoriteEvent{ID: uuid.NewString(), PropertyID: id, Favorited: favorited, At: time.Now().UTC()}
}
