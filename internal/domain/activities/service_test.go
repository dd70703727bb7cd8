package activities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items []Activity
}

func (r *testRepo) Append(ctx context.Context, a Activity) error {
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Activity, error) {
	out := make([]Activity, len(r.items))
	copy(out, r.items)
	return out, nil
}

type counter struct{ n int64 }

func (c *counter) Next() int64 {
	c.n++
	return c.n
}

// clock avanza un segundo en cada llamada.
func clock(start time.Time) func() time.Time {
	cur := start.Add(-time.Second)
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo, &counter{})
	svc.now = clock(time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC))
	return svc, repo
}

func TestService_AddActivity_GrowsStoreByOne(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.AddActivity(ctx, 1, CategoryExercise, "Walk")
		require.NoError(t, err)
		assert.Len(t, repo.items, i+1)
	}
}

func TestService_ViewFor_NewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddActivity(ctx, 1, CategoryExercise, "Walk")
	require.NoError(t, err)
	_, err = svc.AddActivity(ctx, 1, CategoryFood, "Meal")
	require.NoError(t, err)

	got, err := svc.ViewFor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Meal", got[0].Details)
	assert.Equal(t, "Walk", got[1].Details)
}

func TestService_AddActivity_UnknownPetIsStored(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.AddActivity(ctx, 2, CategoryFood, "Meal")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.PetID)
	assert.Len(t, repo.items, 1)

	view, err := svc.ViewFor(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestService_AddPreset(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.AddPreset(ctx, 7, PresetPlay)
	require.NoError(t, err)
	assert.Equal(t, CategoryExercise, a.Type)
	assert.Equal(t, "Play", a.Details)

	a, err = svc.AddPreset(ctx, 7, PresetMeal)
	require.NoError(t, err)
	assert.Equal(t, CategoryFood, a.Type)
	assert.Equal(t, "Meal", a.Details)

	_, err = svc.AddPreset(ctx, 7, PresetKey("nap"))
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestService_ViewFor_Idempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, pid := range []int64{1, 2, 1, 3, 1} {
		_, err := svc.AddActivity(ctx, pid, CategoryExercise, "Walk")
		require.NoError(t, err)
	}
	before := append([]Activity(nil), repo.items...)

	first, err := svc.ViewFor(ctx, 1)
	require.NoError(t, err)
	second, err := svc.ViewFor(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, repo.items, "view must not reorder the store")
}

func TestActivity_TimestampISO(t *testing.T) {
	a := Activity{Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("X", 3600))}
	assert.Equal(t, "2025-01-02T02:04:05.006Z", a.TimestampISO())
}
