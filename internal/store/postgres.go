package store

import (
	"database/sql"
	"fmt"

	"lastomo-app/internal/config"
	"lastomo-app/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

// Ensure PostgresStore implements the Store interface
var _ Store = (*PostgresStore)(nil)

// PostgresStore implements Store on a PostgreSQL database
type PostgresStore struct {
	conn *sql.DB
}

// NewPostgresStore connects to PostgreSQL and applies migrations
func NewPostgresStore(dbConfig config.DatabaseConfig) (*PostgresStore, error) {
	dsn := dbConfig.GetDSN()
	logger.Log.WithField("dsn", dsn).Info("Connecting to PostgreSQL")

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	logger.Log.Info("Successfully connected to PostgreSQL")

	s := &PostgresStore{conn: conn}

	if err = s.runMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	logger.Log.Info("Migrations completed successfully")

	return s, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *PostgresStore) runMigrations() error {
	source, err := iofs.New(postgresMigrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("error loading embedded migrations: %w", err)
	}

	driver, err := migratepostgres.WithInstance(s.conn, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("error creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("error creating migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("error running migrations: %w", err)
	}
	return nil
}

// SaveProfile inserts one users row with all ten fields positionally bound
func (s *PostgresStore) SaveProfile(profile *ProfileRecord) error {
	query := `
	INSERT INTO users (
		username, nickname, email, gender, age,
		occupation, family_structure, location, nationality, religion
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
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
