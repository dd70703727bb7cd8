package session

import (
	"context"
	"database/sql"

	mem "pet-health-tracker/internal/adapters/storage/memory"
	"pet-health-tracker/internal/adapters/storage/sqlrepo"
	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/domain/pets"
)

// Stores son los dos stores append-only de una sesión.
type Stores struct {
	Pets       pets.Repository
	Activities activities.Repository
}

// Backend crea los stores de cada sesión y los libera cuando la sesión muere.
type Backend interface {
	Open(ctx context.Context, sessionID string) (Stores, error)
	Purge(ctx context.Context, sessionID string) error
}

// MemoryBackend: todo vive en el proceso; al soltar la sesión el GC hace el resto.
type MemoryBackend struct{}

func (MemoryBackend) Open(ctx context.Context, sessionID string) (Stores, error) {
	return Stores{
		Pets:       mem.NewPetRepo(),
		Activities: mem.NewActivityRepo(),
	}, nil
}

func (MemoryBackend) Purge(ctx context.Context, sessionID string) error { return nil }

// SQLBackend guarda las filas en Postgres o SQLite con session_id,
// y las borra al expirar la sesión.
type SQLBackend struct {
	db *sql.DB
}

func NewSQLBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Open(ctx context.Context, sessionID string) (Stores, error) {
	return Stores{
		Pets:       sqlrepo.NewPetsRepo(b.db, sessionID),
		Activities: sqlrepo.NewActivitiesRepo(b.db, sessionID),
	}, nil
}

func (b *SQLBackend) Purge(ctx context.Context, sessionID string) error {
	return sqlrepo.Purge(ctx, b.db, sessionID)
}
