package services

import (
	"database/sql"
	"errors"
	"fmt"

	"chavecerta/internal/domain"
	"chavecerta/internal/repos"
)

var ErrNotFound = errors.New("listing not found")

type CatalogService struct {
	Props *repos.PropertyRepo
	Home  *repos.HomeRepo
}

func NewCatalogService(props *repos.PropertyRepo, home *repos.HomeRepo) *CatalogService {
	return &CatalogService{Props: props, Home: home}
}

// Featured returns the landing page listings in catalog order.
func (s *CatalogService) Featured() ([]domain.Property, error) {
	return s.List(1, 12)
}

func (s *CatalogService) List(page, pageSize int) ([]domain.Property, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	props, err := s.Props.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return props, nil
}

func (s *CatalogService) GetProperty(id int64) (domain.Property, error) {
	p, err := s.Props.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Property{}, ErrNotFound
	}
	if err != nil {
		return domain.Property{}, fmt.Errorf("get listing %d: %w", id, err)
	}
	return p, nil
}

func (s *CatalogService) PropertyTypes() ([]domain.PropertyType, error) {
	return s.Home.PropertyTypes()
}

func (s *CatalogService) Stats() (domain.HomeStats, error) {
	return s.Home.Stats()
}
