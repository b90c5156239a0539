package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	"chavecerta/internal/domain"
	"chavecerta/internal/repos"
)

func TestSeededCatalogOrder(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	props, err := repos.NewPropertyRepo(db).List(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Apartamento Moderno no Centro",
		"Casa Aconchegante com Jardim",
		"Kitnet Prática para Estudantes",
	}
	if len(props) != len(want) {
		t.Fatalf("want %d listings, got %d", len(want), len(props))
	}
	for i, p := range props {
		if p.Title != want[i] {
			t.Fatalf("listing %d: want %q, got %q", i, want[i], p.Title)
		}
		if p.Owner.ID != p.OwnerID || p.Owner.Role != domain.RoleOwner {
			t.Fatalf("owner not joined for %d: %+v", p.ID, p.Owner)
		}
		if len(p.Amenities) != 3 {
			t.Fatalf("amenities for %d: %v", p.ID, p.Amenities)
		}
	}
	if props[0].MonthlyRent != 2500 || !props[0].Furnished || props[0].PetsAllowed {
		t.Fatalf("first listing fields wrong: %+v", props[0])
	}
	if props[1].Owner.Name != "Maria Santos" {
		t.Fatalf("owner name: %q", props[1].Owner.Name)
	}
}

func TestGetMissingListing(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	_, err = repos.NewPropertyRepo(db).Get(999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows, got %v", err)
	}
}

func TestListingWithoutImages(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`DELETE FROM property_images WHERE property_id = 2`); err != nil {
		t.Fatal(err)
	}
	p, err := repos.NewPropertyRepo(db).Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Images) != 0 {
		t.Fatalf("expected no images, got %v", p.Images)
	}
	if p.PrimaryImage() != domain.PlaceholderImage {
		t.Fatalf("primary image: %q", p.PrimaryImage())
	}
}

func TestHomeAggregates(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	h := repos.NewHomeRepo(db)
	stats, err := h.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalProperties != 1247 || stats.TotalOwners != 458 || stats.TotalContracts != 892 || stats.AveragePrice != 2150 {
		t.Fatalf("stats: %+v", stats)
	}
	types, err := h.PropertyTypes()
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != 4 || types[0].Key != domain.CategoryApartment || types[3].Icon != "store" {
		t.Fatalf("types: %+v", types)
	}
}
