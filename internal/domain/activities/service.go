package activities

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownPreset = errors.New("unknown activity preset")
)

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

// AddActivity agrega una actividad con timestamp = ahora.
// No se verifica que petID exista: la actividad queda guardada aunque no aparezca en ninguna tarjeta.
func (s *Service) AddActivity(ctx context.Context, petID int64, typ Category, details string) (Activity, error) {
	a := Activity{
		ID:        s.ids.Next(),
		PetID:     petID,
		Type:      typ,
		Details:   details,
		Timestamp: s.now().UTC(),
	}

	if err := s.repo.Append(ctx, a); err != nil {
		return Activity{}, fmt.Errorf("add activity: %w", err)
	}
	return a, nil
}

// AddPreset registra la actividad de uno de los botones fijos (walk/play/meal).
func (s *Service) AddPreset(ctx context.Context, petID int64, key PresetKey) (Activity, error) {
	p, ok := LookupPreset(key)
	if !ok {
		return Activity{}, ErrUnknownPreset
	}
	return s.AddActivity(ctx, petID, p.Type, p.Details)
}

func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

// ViewFor recalcula la vista completa en cada llamada (scan lineal + sort).
func (s *Service) ViewFor(ctx context.Context, petID int64) ([]Activity, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return View(all, petID), nil
}
