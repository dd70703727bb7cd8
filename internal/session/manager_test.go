package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-health-tracker/internal/platform/metrics"
)

// recordingBackend es memoria + registro de purges.
type recordingBackend struct {
	MemoryBackend

	mu      sync.Mutex
	purged  []string
	openErr error
}

func (b *recordingBackend) Open(ctx context.Context, id string) (Stores, error) {
	if b.openErr != nil {
		return Stores{}, b.openErr
	}
	return b.MemoryBackend.Open(ctx, id)
}

func (b *recordingBackend) Purge(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.purged = append(b.purged, id)
	return nil
}

func (b *recordingBackend) purgedIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.purged...)
}

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(&recordingBackend{}, Options{Logger: zerolog.Nop()})

	s, err := m.Create(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("nope")
	assert.False(t, ok)
	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager(&recordingBackend{}, Options{Logger: zerolog.Nop()})
	ctx := context.Background()

	s1, created, err := m.GetOrCreate(ctx, "")
	require.NoError(t, err)
	assert.True(t, created)

	s2, created, err := m.GetOrCreate(ctx, s1.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, s1, s2)

	s3, created, err := m.GetOrCreate(ctx, "expired-or-forged")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, s1.ID, s3.ID)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(&recordingBackend{}, Options{Logger: zerolog.Nop()})
	ctx := context.Background()

	a, err := m.Create(ctx)
	require.NoError(t, err)
	b, err := m.Create(ctx)
	require.NoError(t, err)

	_, err = a.AddPet(ctx, "Rex", "Dog")
	require.NoError(t, err)

	items, err := b.PetsService().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestManager_CapacityEvictsAndPurges(t *testing.T) {
	backend := &recordingBackend{}
	m := NewManager(backend, Options{MaxSessions: 2, Logger: zerolog.Nop()})
	ctx := context.Background()

	first, err := m.Create(ctx)
	require.NoError(t, err)
	_, err = m.Create(ctx)
	require.NoError(t, err)
	_, err = m.Create(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get(first.ID)
	assert.False(t, ok)

	m.Close()
	assert.Contains(t, backend.purgedIDs(), first.ID)
	assert.Len(t, backend.purgedIDs(), 3)
	assert.Zero(t, m.Len())
}

func TestManager_IdleExpiry(t *testing.T) {
	m := NewManager(&recordingBackend{}, Options{TTL: 50 * time.Millisecond, Logger: zerolog.Nop()})

	s, err := m.Create(context.Background())
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)
	_, ok := m.Get(s.ID)
	assert.False(t, ok)

	// Close saca lo que el janitor todavía no borró; la sesión se cuenta una vez
	m.Close()
	assert.Zero(t, m.Len())
}

func TestManager_CreatePropagatesBackendError(t *testing.T) {
	boom := errors.New("db down")
	m := NewManager(&recordingBackend{openErr: boom}, Options{Logger: zerolog.Nop()})

	_, err := m.Create(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, m.Len())
}

// Expira entre el Get y el Add que renueva el TTL: la sesión ya fue contada y
// purgada, así que no puede volver al registro.
func TestManager_GetDoesNotReviveEvictedSession(t *testing.T) {
	backend := &recordingBackend{}
	m := NewManager(backend, Options{Logger: zerolog.Nop()})

	s, err := m.Create(context.Background())
	require.NoError(t, err)
	active := testutil.ToFloat64(metrics.SessionsActive)

	// mismo efecto que el callback de expiración disparado con la entrada todavía visible
	m.onEvict(s.ID, s)
	m.purges.Wait()

	_, ok := m.Get(s.ID)
	assert.False(t, ok)
	assert.Zero(t, m.Len())

	m.Close()
	assert.Equal(t, []string{s.ID}, backend.purgedIDs())
	assert.Equal(t, active-1, testutil.ToFloat64(metrics.SessionsActive))
}
