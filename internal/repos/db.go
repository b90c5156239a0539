package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the catalog store, creates the schema and loads the mock
// listings. An in-memory DSN lives per connection, so the pool is pinned to a
// single connection.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Owners and tenants
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  phone TEXT,
  profile_image TEXT,
  role TEXT NOT NULL CHECK (role IN ('proprietario','inquilino')),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

-- Listings
CREATE TABLE IF NOT EXISTS properties(
  id INTEGER PRIMARY KEY,
  owner_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL CHECK (category IN ('casa','apartamento','kitnet','comercial')),
  address TEXT NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  postal_code TEXT NOT NULL,
  monthly_rent NUMERIC NOT NULL CHECK (monthly_rent >= 0),
  area_m2 NUMERIC NOT NULL CHECK (area_m2 >= 0),
  rooms INTEGER NOT NULL DEFAULT 0,
  bathrooms INTEGER NOT NULL DEFAULT 0,
  parking INTEGER NOT NULL DEFAULT 0,
  furnished INTEGER NOT NULL DEFAULT 0,
  pets_allowed INTEGER NOT NULL DEFAULT 0,
  available INTEGER NOT NULL DEFAULT 1,
  latitude REAL,
  longitude REAL,
  position INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_properties_position ON properties(position);

CREATE TABLE IF NOT EXISTS property_images(
  property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  url TEXT NOT NULL,
  PRIMARY KEY (property_id, position)
);

CREATE TABLE IF NOT EXISTS property_amenities(
  property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  label TEXT NOT NULL,
  PRIMARY KEY (property_id, position)
);

-- Landing page aggregates (display only)
CREATE TABLE IF NOT EXISTS property_types(
  type_key TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  icon TEXT NOT NULL,
  count INTEGER NOT NULL,
  position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS home_stats(
  id INTEGER PRIMARY KEY CHECK (id = 1),
  total_properties INTEGER NOT NULL,
  total_owners INTEGER NOT NULL,
  total_contracts INTEGER NOT NULL,
  average_price NUMERIC NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM properties`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting mock owners/listings/home aggregates")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmts := []string{
		`INSERT INTO users(id,email,name,role,active,created_at,updated_at) VALUES
		  (1,'proprietario@email.com','João Silva','proprietario',1,'2024-01-01','2024-01-01'),
		  (2,'maria@email.com','Maria Santos','proprietario',1,'2024-01-01','2024-01-01'),
		  (3,'carlos@email.com','Carlos Oliveira','proprietario',1,'2024-01-01','2024-01-01')`,

		`INSERT INTO properties(
		   id,owner_id,title,description,category,address,city,state,postal_code,
		   monthly_rent,area_m2,rooms,bathrooms,parking,furnished,pets_allowed,available,
		   position,created_at,updated_at) VALUES
		  (1,1,'Apartamento Moderno no Centro','Lindo apartamento com vista para a cidade','apartamento',
		   'Rua das Flores, 123','São Paulo','SP','01234-567',2500,75,2,2,1,1,0,1,1,'2024-01-01','2024-01-01'),
		  (2,2,'Casa Aconchegante com Jardim','Casa familiar com amplo jardim','casa',
		   'Rua dos Jasmins, 456','Rio de Janeiro','RJ','22000-000',3200,120,3,2,2,0,1,1,2,'2024-01-01','2024-01-01'),
		  (3,3,'Kitnet Prática para Estudantes','Perfeita para estudantes universitários','kitnet',
		   'Rua Universitária, 789','Belo Horizonte','MG','30000-000',800,25,1,1,0,1,0,1,3,'2024-01-01','2024-01-01')`,

		`INSERT INTO property_images(property_id,position,url) VALUES
		  (1,0,'/static/placeholder-property.svg'),
		  (2,0,'/static/placeholder-property.svg'),
		  (3,0,'/static/placeholder-property.svg')`,

		`INSERT INTO property_amenities(property_id,position,label) VALUES
		  (1,0,'Academia'),(1,1,'Piscina'),(1,2,'Portaria 24h'),
		  (2,0,'Jardim'),(2,1,'Churrasqueira'),(2,2,'Garagem'),
		  (3,0,'Mobiliado'),(3,1,'Internet'),(3,2,'Próximo à universidade')`,

		`INSERT INTO property_types(type_key,name,description,icon,count,position) VALUES
		  ('apartamento','Apartamentos','Modernos e bem localizados','building',542,1),
		  ('casa','Casas','Conforto e privacidade','home',387,2),
		  ('kitnet','Kitnets','Práticas e econômicas','home',248,3),
		  ('comercial','Comerciais','Para seu negócio crescer','store',70,4)`,

		`INSERT INTO home_stats(id,total_properties,total_owners,total_contracts,average_price)
		 VALUES (1,1247,458,892,2150)`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}
	return tx.Commit()
}
