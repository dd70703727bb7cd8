package memory

import (
	"context"
	"errors"
	"sync"

	"pet-health-tracker/internal/domain/pets"
)

type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
	byID  map[int64]int // índice en items
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]int),
	}
}

func (r *petRepo) Append(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = len(r.items)
	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.items[i], nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copia: el caller no debe poder alterar el store
	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}
