package store

import (
	"fmt"

	"lastomo-app/internal/config"
)

// ProfileRecord is one user's demographic and contextual attributes,
// captured once at signup. Every field is optional; nil pointers are
// written as SQL NULL.
type ProfileRecord struct {
	Username        *string
	Nickname        *string
	Email           *string
	Gender          *string
	Age             *int
	Occupation      *string
	FamilyStructure *string
	Location        *string
	Nationality     *string
	Religion        *string
}

// Store defines the interface for profile persistence.
// This allows handlers to be tested against a mock instead of a live database.
type Store interface {
	// SaveProfile inserts one users row. Create-only: no update or delete
	// path exists for profiles.
	SaveProfile(profile *ProfileRecord) error
	Close() error
}

// New creates a Store for the configured driver
func New(dbConfig config.DatabaseConfig) (Store, error) {
	switch dbConfig.Driver {
	case "sqlite3", "":
		return NewSQLiteStore(dbConfig)
	case "postgres":
		return NewPostgresStore(dbConfig)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", dbConfig.Driver)
	}
}
