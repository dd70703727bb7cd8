package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("pet not found")
)

// Repository es append-only: no hay Update ni Delete.
// List devuelve las mascotas en orden de alta.
type Repository interface {
	Append(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
}
