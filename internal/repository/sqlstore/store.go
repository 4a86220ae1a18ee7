package sqlstore

import (
	"github.com/jmoiron/sqlx"
)

// Store implements repository.Storage on top of SQLite or PostgreSQL.
// Queries are written with ? placeholders and rebound for the driver.
type Store struct {
	db *sqlx.DB
}

// New creates a new SQL store
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database is reachable
func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) q(query string) string {
	return s.db.Rebind(query)
}
