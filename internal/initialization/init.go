// The init package contains functions that setup required dependencies such
// as the SQLite store and the notification task queue.
package initialization

import (
	"database/sql"
	"errors"
	"time"

	"github.com/YoussefKhattab111/microblog/internal/config"
	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

// SetupDB creates the records table, if it does not yet exist, and applies
// all remaining migrations.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	return nil
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return db, err
}

// InitQueue opens the task database and prepares the backlite client that
// runs the notification queue.
func InitQueue(cfg *config.Configuration) (*backlite.Client, error) {
	db, err := OpenDB(cfg.QueueDbUrl)
	if err != nil {
		return nil, err
	}

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      2,
		ReleaseAfter:    10 * time.Minute,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}
