package sqlrepo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// SchemaVersion es la versión actual del esquema de sesiones.
const SchemaVersion = 1

// El DDL es común a Postgres y SQLite (ambos aceptan BIGINT/TEXT y placeholders $N).
var schemaV1 = []string{
	`CREATE TABLE IF NOT EXISTS session_pets (
		session_id TEXT   NOT NULL,
		id         BIGINT NOT NULL,
		name       TEXT   NOT NULL,
		type       TEXT   NOT NULL,
		created_at BIGINT NOT NULL,
		PRIMARY KEY (session_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS session_activities (
		session_id TEXT   NOT NULL,
		id         BIGINT NOT NULL,
		pet_id     BIGINT NOT NULL,
		type       TEXT   NOT NULL,
		details    TEXT   NOT NULL,
		ts         BIGINT NOT NULL,
		PRIMARY KEY (session_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_activities_pet
		ON session_activities (session_id, pet_id)`,
}

// Migrate asegura que el esquema exista y esté en SchemaVersion.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("migrate: db is nil")
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`); err != nil {
		return errors.Wrap(err, "migrate: create schema_migrations")
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return errors.Wrap(err, "migrate: read current version")
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "migrate: begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schemaV1 {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "migrate: apply v1")
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, SchemaVersion); err != nil {
		return errors.Wrap(err, "migrate: record version")
	}

	return errors.Wrap(tx.Commit(), "migrate: commit")
}
