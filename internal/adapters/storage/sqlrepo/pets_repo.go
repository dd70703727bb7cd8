package sqlrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"pet-health-tracker/internal/domain/pets"
)

// PetsRepo guarda las mascotas de una sola sesión; todas las filas llevan session_id.
type PetsRepo struct {
	db        *sql.DB
	sessionID string
}

func NewPetsRepo(db *sql.DB, sessionID string) *PetsRepo {
	return &PetsRepo{db: db, sessionID: sessionID}
}

func (r *PetsRepo) Append(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_pets (session_id, id, name, type, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		r.sessionID,
		p.ID,
		p.Name,
		p.Type,
		p.CreatedAt.UnixNano(),
	)
	return errors.Wrap(err, "insert pet")
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, created_at
		FROM session_pets
		WHERE session_id = $1 AND id = $2
	`, r.sessionID, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, errors.Wrap(err, "get pet")
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	// ids monótonos por sesión: ORDER BY id == orden de alta
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, created_at
		FROM session_pets
		WHERE session_id = $1
		ORDER BY id ASC
	`, r.sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "list pets")
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan pet")
		}
		out = append(out, p)
	}

	return out, errors.Wrap(rows.Err(), "list pets")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var createdAt int64
	if err := s.Scan(&p.ID, &p.Name, &p.Type, &createdAt); err != nil {
		return pets.Pet{}, err
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return p, nil
}
