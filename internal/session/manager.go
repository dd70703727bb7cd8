package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"pet-health-tracker/internal/platform/metrics"
)

const purgeTimeout = 5 * time.Second

type Options struct {
	// TTL de inactividad; 0 = sin expiración.
	TTL time.Duration
	// Máximo de sesiones vivas; 0 = sin límite. Al superarlo se expulsa la menos usada.
	MaxSessions int

	Logger zerolog.Logger
}

// Manager es el registro de sesiones por id de cookie.
type Manager struct {
	backend Backend
	cache   *expirable.LRU[string, *Session]
	log     zerolog.Logger

	purges sync.WaitGroup
}

func NewManager(backend Backend, opts Options) *Manager {
	if backend == nil {
		backend = MemoryBackend{}
	}
	m := &Manager{
		backend: backend,
		log:     opts.Logger,
	}
	m.cache = expirable.NewLRU[string, *Session](opts.MaxSessions, m.onEvict, opts.TTL)
	return m
}

// onEvict corre con el lock del cache tomado: el purge va en otra goroutine.
// Una sesión se cuenta y se purga una sola vez.
func (m *Manager) onEvict(id string, s *Session) {
	if !s.markEvicted() {
		return
	}
	metrics.SessionsEvicted.Inc()
	metrics.SessionsActive.Dec()

	m.purges.Add(1)
	go func() {
		defer m.purges.Done()

		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		if err := m.backend.Purge(ctx, id); err != nil {
			m.log.Error().Stack().Err(err).Str("session_id", id).Msg("session purge failed")
			return
		}
		m.log.Debug().Str("session_id", id).Msg("session evicted")
	}()
}

// Get devuelve la sesión y renueva su TTL.
func (m *Manager) Get(id string) (*Session, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, false
	}
	if s.evicted.Load() {
		m.cache.Remove(id)
		return nil, false
	}
	// Add sobre una clave existente renueva la expiración sin disparar onEvict
	m.cache.Add(id, s)

	// Si expiró entre Get y Add, Add la reinsertó ya purgada: se saca de nuevo.
	if s.evicted.Load() {
		m.cache.Remove(id)
		return nil, false
	}
	return s, true
}

func (m *Manager) Create(ctx context.Context) (*Session, error) {
	id := uuid.NewString()

	stores, err := m.backend.Open(ctx, id)
	if err != nil {
		return nil, err
	}

	s := New(id, stores)
	m.cache.Add(id, s)

	metrics.SessionsCreated.Inc()
	metrics.SessionsActive.Inc()
	m.log.Debug().Str("session_id", id).Msg("session created")

	return s, nil
}

// GetOrCreate devuelve la sesión de id o crea una nueva (created=true)
// si id está vacío o ya expiró.
func (m *Manager) GetOrCreate(ctx context.Context, id string) (s *Session, created bool, err error) {
	if s, ok := m.Get(id); ok {
		return s, false, nil
	}
	s, err = m.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (m *Manager) Len() int {
	return m.cache.Len()
}

// Close expulsa todas las sesiones y espera a que terminen los purges.
func (m *Manager) Close() {
	for _, id := range m.cache.Keys() {
		m.cache.Remove(id)
	}
	m.purges.Wait()
}
