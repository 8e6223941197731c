package store

import (
	"database/sql"
	"fmt"

	"lastomo-app/internal/config"
	"lastomo-app/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

// Ensure SQLiteStore implements the Store interface
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store on a local SQLite database file
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (or creates) the database file and applies migrations
func NewSQLiteStore(dbConfig config.DatabaseConfig) (*SQLiteStore, error) {
	logger.Log.WithField("path", dbConfig.Path).Info("Opening SQLite database")

	conn, err := sql.Open("sqlite3", dbConfig.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	s := &SQLiteStore{conn: conn}

	if err = s.runMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	logger.Log.Info("SQLite schema is up to date")

	return s, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	source, err := iofs.New(sqliteMigrations, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("error loading embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("error creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("error creating migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error running migrations: %w", err)
	}
	return nil
}

// SaveProfile inserts one users row with all ten fields positionally bound
func (s *SQLiteStore) SaveProfile(profile *ProfileRecord) error {
	query := `
	INSERT INTO users (
		username, nickname, email, gender, age,
		occupation, family_structure, location, nationality, religion
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn.Exec(query,
		profile.Username, profile.Nickname, profile.Email,
		profile.Gender, profile.Age, profile.Occupation,
		profile.FamilyStructure, profile.Location,
		profile.Nationality, profile.Religion,
	)
	if err != nil {
		return fmt.Errorf("error inserting profile: %w", err)
	}

	logger.Log.Info("Saved user profile")
	return nil
}
