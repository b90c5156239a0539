package handlers

import (
	"chavecerta/internal/config"
	"chavecerta/internal/repos"
	"chavecerta/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler     *HomeHandler
	SearchHandler   *SearchHandler
	PropertyHandler *PropertyHandler
	FavoriteHandler *FavoriteHandler
	MediaHandler    *MediaHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	propRepo := repos.NewPropertyRepo(db)
	homeRepo := repos.NewHomeRepo(db)

	catalogSvc := services.NewCatalogService(propRepo, homeRepo)
	searchSvc := services.NewSearchService()
	favSvc := services.NewFavoriteService(catalogSvc)
	media := NewMediaHandler(cfg.MediaDir, cfg.StaticDir)

	return &Deps{
		HomeHandler:     &HomeHandler{Catalog: catalogSvc, Media: media},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc, Search: searchSvc, Media: media},
		PropertyHandler: &PropertyHandler{Catalog: catalogSvc, Media: media},
		FavoriteHandler: &FavoriteHandler{Favorites: favSvc},
		MediaHandler:    media,
	}
}
