package activities

import "context"

// Repository es append-only. List devuelve todo el store en orden de alta;
// el filtrado y orden por mascota lo hace View, nunca el store.
type Repository interface {
	Append(ctx context.Context, a Activity) error
	List(ctx context.Context) ([]Activity, error)
}
