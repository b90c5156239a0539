package ui

import (
	"strconv"

	"chavecerta/internal/domain"
)

type Variant string

const (
	VariantGrid Variant = "grid"
	VariantList Variant = "list"
)

// ParseVariant falls back to the grid arrangement for anything but "list".
func ParseVariant(s string) Variant {
	if Variant(s) == VariantList {
		return VariantList
	}
	return VariantGrid
}

type CardOption func(*PropertyCard)

func WithVariant(v Variant) CardOption { return func(c *PropertyCard) { c.Variant = v } }

func WithFavorite(show bool) CardOption { return func(c *PropertyCard) { c.ShowFavorite = show } }

// OnFavorite registers the parent callback, called with the listing id on
// every favorite toggle.
func OnFavorite(fn func(id int64)) CardOption { return func(c *PropertyCard) { c.onFavorite = fn } }

// CheckImage marks the card's image as failed up front when exists rejects
// the primary image.
func CheckImage(exists func(src string) bool) CardOption {
	return func(c *PropertyCard) { c.imageExists = exists }
}

// Favorited seeds the toggle with the state the browser currently shows.
func Favorited(on bool) CardOption { return func(c *PropertyCard) { c.favorited = on } }

// PropertyCard renders one listing. The favorited flag lives only as long as
// the card; the image-failed flag is sticky once set.
type PropertyCard struct {
	Property     domain.Property
	Variant      Variant
	ShowFavorite bool

	onFavorite  func(id int64)
	imageExists func(src string) bool
	favorited   bool
	imageFailed bool
}

func NewPropertyCard(p domain.Property, opts ...CardOption) *PropertyCard {
	c := &PropertyCard{Property: p, Variant: VariantGrid, ShowFavorite: true}
	for _, o := range opts {
		o(c)
	}
	if c.Variant != VariantList {
		c.Variant = VariantGrid
	}
	if c.imageExists != nil && len(p.Images) > 0 && !c.imageExists(p.PrimaryImage()) {
		c.MarkImageFailed()
	}
	return c
}

// ToggleFavorite flips the favorited flag and notifies the parent once.
func (c *PropertyCard) ToggleFavorite() {
	c.favorited = !c.favorited
	if c.onFavorite != nil {
		c.onFavorite(c.Property.ID)
	}
}

func (c *PropertyCard) IsFavorited() bool { return c.favorited }

func (c *PropertyCard) MarkImageFailed() { c.imageFailed = true }

func (c *PropertyCard) ImageFailed() bool { return c.imageFailed }

func (c *PropertyCard) ImageSrc() string {
	if c.imageFailed {
		return domain.PlaceholderImage
	}
	return c.Property.PrimaryImage()
}

func (c *PropertyCard) Placeholder() string { return domain.PlaceholderImage }

func (c *PropertyCard) Price() string { return FormatBRL(c.Property.MonthlyRent) }

func (c *PropertyCard) Href() string {
	return "/imoveis/" + strconv.FormatInt(c.Property.ID, 10)
}

func (c *PropertyCard) IsGrid() bool { return c.Variant == VariantGrid }

// Area drops the fraction for whole square meters: 75 -> "75", 42.5 -> "42,5".
func (c *PropertyCard) Area() string {
	return FormatArea(c.Property.AreaM2)
}

// Tags are the furnished and pet badges, in display order.
func (c *PropertyCard) Tags() []string {
	var tags []string
	if c.Property.Furnished {
		tags = append(tags, "Mobiliado")
	}
	if c.Property.PetsAllowed {
		tags = append(tags, "Pet Friendly")
	}
	return tags
}
