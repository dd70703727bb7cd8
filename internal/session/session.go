package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/platform/idgen"
)

// Draft son los campos pendientes del form "nueva mascota".
type Draft struct {
	Name string
	Type string
}

// Card es una mascota con su vista de actividades (más reciente primero).
type Card struct {
	Pet        pets.Pet
	Activities []activities.Activity
}

// Session es el único dueño del estado de un navegador: los dos stores,
// la secuencia de ids y el draft del form. No hay estado global.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	draft Draft

	evicted atomic.Bool

	pets       *pets.Service
	activities *activities.Service
}

// New arma una sesión sobre stores ya abiertos. Mascotas y actividades
// comparten la misma secuencia de ids (milisegundos Unix, nunca repetidos).
func New(id string, stores Stores) *Session {
	seq := idgen.NewSequence()
	return &Session{
		ID:         id,
		CreatedAt:  time.Now().UTC(),
		pets:       pets.NewService(countingPets{stores.Pets}, seq),
		activities: activities.NewService(countingActivities{stores.Activities}, seq),
	}
}

func (s *Session) PetsService() *pets.Service             { return s.pets }
func (s *Session) ActivitiesService() *activities.Service { return s.activities }

func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) SetDraft(name, petType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = Draft{Name: name, Type: petType}
}

// SubmitDraft da de alta la mascota del draft y lo resetea a vacío.
// Si el alta falla el draft se conserva.
func (s *Session) SubmitDraft(ctx context.Context) (pets.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.pets.AddPet(ctx, s.draft.Name, s.draft.Type)
	if err != nil {
		return pets.Pet{}, err
	}
	s.draft = Draft{}
	return p, nil
}

// SubmitPet copia name/type al draft, da de alta la mascota y resetea el draft,
// todo bajo el mismo lock: un PUT concurrente del draft no se mezcla con el alta.
func (s *Session) SubmitPet(ctx context.Context, name, petType string) (pets.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = Draft{Name: name, Type: petType}
	p, err := s.pets.AddPet(ctx, name, petType)
	if err != nil {
		return pets.Pet{}, err
	}
	s.draft = Draft{}
	return p, nil
}

func (s *Session) AddPet(ctx context.Context, name, petType string) (pets.Pet, error) {
	return s.pets.AddPet(ctx, name, petType)
}

func (s *Session) AddActivity(ctx context.Context, petID int64, typ activities.Category, details string) (activities.Activity, error) {
	return s.activities.AddActivity(ctx, petID, typ, details)
}

func (s *Session) AddPreset(ctx context.Context, petID int64, key activities.PresetKey) (activities.Activity, error) {
	return s.activities.AddPreset(ctx, petID, key)
}

// markEvicted devuelve true sólo la primera vez.
func (s *Session) markEvicted() bool {
	return s.evicted.CompareAndSwap(false, true)
}

// Cards recalcula la vista de cada mascota en cada render.
// Las actividades de mascotas inexistentes no aparecen en ninguna tarjeta.
func (s *Session) Cards(ctx context.Context) ([]Card, error) {
	ps, err := s.pets.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Card, 0, len(ps))
	for _, p := range ps {
		out = append(out, Card{
			Pet:        p,
			Activities: activities.View(all, p.ID),
		})
	}
	return out, nil
}
