package domain

// Property categories as stored in the catalog.
const (
	CategoryHouse      = "casa"
	CategoryApartment  = "apartamento"
	CategoryStudio     = "kitnet"
	CategoryCommercial = "comercial"
)

// User roles.
const (
	RoleOwner  = "proprietario"
	RoleTenant = "inquilino"
)

// PlaceholderImage is served whenever a listing has no usable photo.
const PlaceholderImage = "/static/placeholder-property.svg"

var categories = []string{CategoryApartment, CategoryHouse, CategoryStudio, CategoryCommercial}

// Categories returns the known listing categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool {
	for _, c := range categories {
		if c == s {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"nome"`
	Phone        string `db:"phone" json:"telefone,omitempty"`
	ProfileImage string `db:"profile_image" json:"imagem_perfil,omitempty"`
	Role         string `db:"role" json:"tipo_usuario"` // proprietario | inquilino
	Active       bool   `db:"active" json:"is_active"`
	CreatedAt    string `db:"created_at" json:"created_at"`
	UpdatedAt    string `db:"updated_at" json:"updated_at"`
}

type Property struct {
	ID          int64    `db:"id" json:"id"`
	Title       string   `db:"title" json:"titulo"`
	Description string   `db:"description" json:"descricao"`
	Category    string   `db:"category" json:"tipo"`
	Address     string   `db:"address" json:"endereco"`
	City        string   `db:"city" json:"cidade"`
	State       string   `db:"state" json:"estado"`
	PostalCode  string   `db:"postal_code" json:"cep"`
	MonthlyRent float64  `db:"monthly_rent" json:"preco_mensal"`
	AreaM2      float64  `db:"area_m2" json:"area_m2"`
	Rooms       int      `db:"rooms" json:"quartos"`
	Bathrooms   int      `db:"bathrooms" json:"banheiros"`
	Parking     int      `db:"parking" json:"vagas_garagem"`
	Furnished   bool     `db:"furnished" json:"mobiliado"`
	PetsAllowed bool     `db:"pets_allowed" json:"permite_pets"`
	Available   bool     `db:"available" json:"disponivel"`
	OwnerID     int64    `db:"owner_id" json:"-"`
	Latitude    *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude   *float64 `db:"longitude" json:"longitude,omitempty"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
	UpdatedAt   string   `db:"updated_at" json:"updated_at"`

	Owner     User     `db:"-" json:"proprietario"`
	Images    []string `db:"-" json:"imagens"`
	Amenities []string `db:"-" json:"amenidades"`
}

// PrimaryImage is the first photo, or the placeholder when there is none.
func (p Property) PrimaryImage() string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}
	return PlaceholderImage
}

// SearchForm is the hero search state. Optional fields are nil when unset.
type SearchForm struct {
	City     string   `json:"cidade" validate:"max=80"`
	Category string   `json:"tipo,omitempty" validate:"omitempty,oneof=casa apartamento kitnet comercial"`
	MinPrice *float64 `json:"precoMin,omitempty" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"precoMax,omitempty" validate:"omitempty,gte=0"`
	Rooms    *int     `json:"quartos,omitempty" validate:"omitempty,min=1,max=4"`
}

type PropertyType struct {
	Key         string `db:"type_key" json:"tipo"`
	Name        string `db:"name" json:"nome"`
	Description string `db:"description" json:"descricao"`
	Icon        string `db:"icon" json:"icone"` // building | home | store
	Count       int    `db:"count" json:"quantidade"`
}

type HomeStats struct {
	TotalProperties int     `db:"total_properties" json:"totalImoveis"`
	TotalOwners     int     `db:"total_owners" json:"totalProprietarios"`
	TotalContracts  int     `db:"total_contracts" json:"totalContratos"`
	AveragePrice    float64 `db:"average_price" json:"mediaPreco"`
}
