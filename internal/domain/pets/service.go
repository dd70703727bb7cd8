package pets

import (
	"context"
	"fmt"
	"time"
)

// IDGenerator entrega ids únicos dentro de la sesión (ver idgen.Sequence).
type IDGenerator interface {
	Next() int64
}

type Service struct {
	repo Repository
	ids  IDGenerator
	now  func() time.Time
}

func NewService(repo Repository, ids IDGenerator) *Service {
	return &Service{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

// AddPet agrega una mascota al final de la lista.
// Nombre y tipo se guardan tal cual llegan (incluido vacío).
func (s *Service) AddPet(ctx context.Context, name, petType string) (Pet, error) {
	p := Pet{
		ID:        s.ids.Next(),
		Name:      name,
		Type:      petType,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Append(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("add pet: %w", err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}
