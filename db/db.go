package db

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MusicianDB holds the database handle and logger for all persistence
// operations. Handlers hold no state between requests; this is the only
// process-scoped resource.
type MusicianDB struct {
	DB  *sqlx.DB
	Log *zerolog.Logger
}

// NewMusicianDB opens a connection to the configured database and verifies
// it with a ping.
func NewMusicianDB(driver, source string, log *zerolog.Logger) (*MusicianDB, error) {
	if source == "" {
		log.Error().Msg("database source is not configured")
		return nil, fmt.Errorf("database source is not configured")
	}

	conn, err := sqlx.Open(driver, source)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(10)
	conn.SetConnMaxLifetime(5 * time.Minute)

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		return nil, err
	}

	return &MusicianDB{
		DB:  conn,
		Log: log,
	}, nil
}

func (m *MusicianDB) Close() error {
	if err := m.DB.Close(); err != nil {
		return err
	}
	m.Log.Info().Msg("database connection closed")
	return nil
}

// InitTables creates the users, groups and users_in_groups tables if they
// do not exist yet. It runs at serve startup so a fresh database is usable
// without a separate migration step.
func (m *MusicianDB) InitTables() error {
	if err := m.DB.Ping(); err != nil {
		m.Log.Error().Err(err).Msg("Database connection ping failed")
		return fmt.Errorf("database connection ping failed: %v", err)
	}

	m.Log.Debug().Msg("Database connection is healthy, starting table initialization")

	tx, err := m.DB.Begin()
	if err != nil {
		m.Log.Error().Err(err).Msg("error starting transaction")
		return fmt.Errorf("error starting transaction: %v", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			login VARCHAR(100) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	if err != nil {
		m.Log.Error().Err(err).Msg("error creating table users")

		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS groups (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	if err != nil {
		m.Log.Error().Err(err).Msg("error creating table groups")

		tx.Rollback()
		return err
	}

	// No foreign keys on purpose: deleting a user or group leaves its
	// association rows behind, matching the documented lifecycle. The
	// UNIQUE pair constraint backs up the application-level existence
	// check so concurrent assigns cannot slip past it.
	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS users_in_groups (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			group_id INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, group_id)
		);
	`)
	if err != nil {
		m.Log.Error().Err(err).Msg("error creating table users_in_groups")

		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %v", err)
	}

	m.Log.Info().Msg("Tables initialized successfully")
	return nil
}

// Migrate applies any pending goose migrations from the embedded
// migrations directory.
func (m *MusicianDB) Migrate() error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	if err := goose.Up(m.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	return nil
}

func (m *MusicianDB) execQuery(tx *sqlx.Tx, query string, args ...interface{}) error {
	if m.DB == nil {
		return fmt.Errorf("database connection is not established")
	}

	_, err := tx.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %v", err)
	}
	return nil
}

// CommitTransaction commits tx, rolling back if the commit itself fails.
func (m *MusicianDB) CommitTransaction(tx *sqlx.Tx) error {
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
