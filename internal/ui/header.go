package ui

import "net/url"

// Query keys that carry the header toggles across server round trips.
const (
	menuParam   = "menu"
	searchParam = "busca"
)

type NavLink struct {
	Href  string
	Label string
}

var navLinks = []NavLink{
	{Href: "/imoveis", Label: "Imóveis"},
	{Href: "/sobre", Label: "Sobre"},
	{Href: "/contato", Label: "Contato"},
}

// Header is the site navigation bar. The mobile menu panel and the mobile
// search panel are independent toggles.
type Header struct {
	MobileMenuOpen bool
	SearchOpen     bool

	path  string
	query url.Values
}

// NewHeader restores the toggle state from the request path and query.
func NewHeader(path string, query url.Values) *Header {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	return &Header{
		MobileMenuOpen: q.Get(menuParam) == "1",
		SearchOpen:     q.Get(searchParam) == "1",
		path:           path,
		query:          q,
	}
}

func (h *Header) ToggleMobileMenu() { h.MobileMenuOpen = !h.MobileMenuOpen }

func (h *Header) ToggleSearch() { h.SearchOpen = !h.SearchOpen }

// CloseMobileMenu runs when a link inside the mobile panel is chosen.
func (h *Header) CloseMobileMenu() { h.MobileMenuOpen = false }

func (h *Header) Links() []NavLink { return navLinks }

// MobileLinks are the navigation links of the mobile panel. Following one
// closes the panel and keeps the search panel as it is.
func (h *Header) MobileLinks() []NavLink {
	links := make([]NavLink, 0, len(navLinks))
	for _, l := range navLinks {
		c := Header{SearchOpen: h.SearchOpen, MobileMenuOpen: h.MobileMenuOpen, path: l.Href}
		c.CloseMobileMenu()
		links = append(links, NavLink{Href: c.url(), Label: l.Label})
	}
	return links
}

func (h *Header) FavoritesHref() string { return "/favoritos" }

// MenuToggleURL points at the current page with only the menu flag flipped.
func (h *Header) MenuToggleURL() string {
	c := *h
	c.ToggleMobileMenu()
	return c.url()
}

// SearchToggleURL points at the current page with only the search flag flipped.
func (h *Header) SearchToggleURL() string {
	c := *h
	c.ToggleSearch()
	return c.url()
}

func (h *Header) url() string {
	q := url.Values{}
	for k, v := range h.query {
		if k == menuParam || k == searchParam {
			continue
		}
		q[k] = v
	}
	if h.MobileMenuOpen {
		q.Set(menuParam, "1")
	}
	if h.SearchOpen {
		q.Set(searchParam, "1")
	}
	path := h.path
	if path == "" {
		path = "/"
	}
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
