package sqlrepo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// Purge borra todo lo de una sesión. Se llama cuando la sesión expira:
// los datos no sobreviven a su sesión.
func Purge(ctx context.Context, db *sql.DB, sessionID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "purge: begin")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_activities WHERE session_id = $1`, sessionID); err != nil {
		return errors.Wrap(err, "purge activities")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM session_pets WHERE session_id = $1`, sessionID); err != nil {
		return errors.Wrap(err, "purge pets")
	}
	return errors.Wrap(tx.Commit(), "purge: commit")
}

// Reset vacía las tablas de sesión. Al arrancar el proceso no hay sesiones vivas
// (el registro es en memoria), así que cualquier fila es huérfana de un proceso anterior.
func Reset(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM session_activities`); err != nil {
		return errors.Wrap(err, "reset activities")
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM session_pets`); err != nil {
		return errors.Wrap(err, "reset pets")
	}
	return nil
}
