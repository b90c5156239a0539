package repos

import (
	"chavecerta/internal/domain"

	"github.com/jmoiron/sqlx"
)

// HomeRepo serves the display-only aggregates of the landing page.
type HomeRepo struct{ db *sqlx.DB }

func NewHomeRepo(db *sqlx.DB) *HomeRepo { return &HomeRepo{db: db} }

func (r *HomeRepo) PropertyTypes() ([]domain.PropertyType, error) {
	var out []domain.PropertyType
	err := r.db.Select(&out, `
  SELECT type_key, name, description, icon, count
  FROM property_types
  ORDER BY position
`)
	return out, err
}

func (r *HomeRepo) Stats() (domain.HomeStats, error) {
	var s domain.HomeStats
	err := r.db.Get(&s, `
  SELECT total_properties, total_owners, total_contracts, average_price
  FROM home_stats
  WHERE id = 1
`)
	return s, err
}
