package main

import (
	"context"
	"database/sql"

	"pet-health-tracker/internal/adapters/storage/postgres"
	"pet-health-tracker/internal/adapters/storage/sqlite"
	"pet-health-tracker/internal/adapters/storage/sqlrepo"
	"pet-health-tracker/internal/config"
	"pet-health-tracker/internal/session"
)

func openDB(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DBDSN)
	case config.DriverSQLite:
		return sqlite.Open(cfg.DBDSN)
	default:
		return nil, nil
	}
}

// openBackend arma el backend de sesiones según DB_DRIVER.
// Con reset=true borra las filas de sesiones de un proceso anterior:
// esas sesiones ya no existen en memoria.
func openBackend(ctx context.Context, cfg *config.Config, reset bool) (session.Backend, func(), error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if db == nil {
		return session.MemoryBackend{}, func() {}, nil
	}

	if err := sqlrepo.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if reset {
		if err := sqlrepo.Reset(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return session.NewSQLBackend(db), func() { _ = db.Close() }, nil
}
