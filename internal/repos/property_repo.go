package repos

import (
	"chavecerta/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PropertyRepo struct{ db *sqlx.DB }

func NewPropertyRepo(db *sqlx.DB) *PropertyRepo { return &PropertyRepo{db: db} }

const propertyCols = `
    id, owner_id, title, description, category, address, city, state, postal_code,
    monthly_rent, area_m2, rooms, bathrooms, parking, furnished, pets_allowed, available,
    latitude, longitude, created_at, updated_at`

// List returns listings in catalog order with owner, images and amenities filled.
func (r *PropertyRepo) List(limit, offset int) ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `
  SELECT`+propertyCols+`
  FROM properties
  ORDER BY position, id
  LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.fill(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Get returns sql.ErrNoRows when the listing does not exist.
func (r *PropertyRepo) Get(id int64) (domain.Property, error) {
	var p domain.Property
	err := r.db.Get(&p, `
  SELECT`+propertyCols+`
  FROM properties
  WHERE id = ?
`, id)
	if err != nil {
		return domain.Property{}, err
	}
	if err := r.fill(&p); err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

func (r *PropertyRepo) fill(p *domain.Property) error {
	if err := r.db.Get(&p.Owner, `
  SELECT id, email, name, COALESCE(phone,'') AS phone, COALESCE(profile_image,'') AS profile_image,
         role, active, created_at, updated_at
  FROM users
  WHERE id = ?
`, p.OwnerID); err != nil {
		return err
	}
	p.Images = []string{}
	if err := r.db.Select(&p.Images, `SELECT url FROM property_images WHERE property_id = ? ORDER BY position`, p.ID); err != nil {
		return err
	}
	p.Amenities = []string{}
	return r.db.Select(&p.Amenities, `SELECT label FROM property_amenities WHERE property_id = ? ORDER BY position`, p.ID)
}
