package ui

import (
	"strconv"

	"chavecerta/internal/domain"
)

// StatsPanel is HomeStats formatted for display.
type StatsPanel struct {
	Properties   string
	Owners       string
	Contracts    string
	AveragePrice string
}

func NewStatsPanel(s domain.HomeStats) StatsPanel {
	return StatsPanel{
		Properties:   FormatCount(s.TotalProperties),
		Owners:       FormatCount(s.TotalOwners),
		Contracts:    FormatCount(s.TotalContracts),
		AveragePrice: "R$ " + FormatArea(s.AveragePrice),
	}
}

// TypeTile is one entry of the property-type grid.
type TypeTile struct {
	domain.PropertyType
}

func (t TypeTile) Href() string { return "/imoveis?tipo=" + t.Key }

// IconName maps unknown icon keys to "home".
func (t TypeTile) IconName() string {
	switch t.Icon {
	case "building", "home", "store":
		return t.Icon
	default:
		return "home"
	}
}

// SearchView is the hero form as the template needs it: every field a string.
type SearchView struct {
	City     string
	Category string
	Rooms    string
	MinPrice string
	MaxPrice string
}

func NewSearchView(f domain.SearchForm) SearchView {
	v := SearchView{City: f.City, Category: f.Category}
	if f.Rooms != nil {
		v.Rooms = strconv.Itoa(*f.Rooms)
	}
	if f.MinPrice != nil {
		v.MinPrice = strconv.FormatFloat(*f.MinPrice, 'f', -1, 64)
	}
	if f.MaxPrice != nil {
		v.MaxPrice = strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64)
	}
	return v
}

type Option struct {
	Value string
	Label string
}

var categoryOptions = []Option{
	{"apartamento", "Apartamento"},
	{"casa", "Casa"},
	{"kitnet", "Kitnet"},
	{"comercial", "Comercial"},
}

var roomOptions = []Option{
	{"1", "1 quarto"},
	{"2", "2 quartos"},
	{"3", "3 quartos"},
	{"4", "4+ quartos"},
}

func (SearchView) CategoryOptions() []Option { return categoryOptions }

func (SearchView) RoomOptions() []Option { return roomOptions }

// HomePage is the landing page, composed in its fixed section order by the
// template: hero search, stats, type grid, featured cards, value panels,
// call to action, footer.
type HomePage struct {
	Header   *Header
	Search   SearchView
	Stats    StatsPanel
	Types    []TypeTile
	Featured []*PropertyCard
	// Submitted is set after a hero search post so the page can acknowledge it.
	Submitted bool
}

func NewHomePage(h *Header, form domain.SearchForm, stats domain.HomeStats, types []domain.PropertyType, featured []domain.Property, cardOpts ...CardOption) HomePage {
	page := HomePage{
		Header: h,
		Search: NewSearchView(form),
		Stats:  NewStatsPanel(stats),
	}
	for _, t := range types {
		page.Types = append(page.Types, TypeTile{t})
	}
	for _, p := range featured {
		page.Featured = append(page.Featured, NewPropertyCard(p, cardOpts...))
	}
	return page
}
