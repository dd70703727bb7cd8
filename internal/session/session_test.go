package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"pet-health-tracker/internal/domain/activities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemSession(t *testing.T) *Session {
	t.Helper()
	stores, err := MemoryBackend{}.Open(context.Background(), "s-1")
	require.NoError(t, err)
	return New("s-1", stores)
}

func TestSession_SubmitDraft_ResetsForm(t *testing.T) {
	ctx := context.Background()
	s := newMemSession(t)

	s.SetDraft("Rex", "Dog")
	assert.Equal(t, Draft{Name: "Rex", Type: "Dog"}, s.Draft())

	p, err := s.SubmitDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, "Dog", p.Type)

	assert.Equal(t, Draft{}, s.Draft())

	items, err := s.PetsService().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rex", items[0].Name)
	assert.Equal(t, "Dog", items[0].Type)
}

func TestSession_SubmitDraft_EmptyFieldsAccepted(t *testing.T) {
	s := newMemSession(t)

	p, err := s.SubmitDraft(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Type)
}

func TestSession_PetsAndActivitiesShareIDSequence(t *testing.T) {
	ctx := context.Background()
	s := newMemSession(t)

	p, err := s.AddPet(ctx, "Rex", "Dog")
	require.NoError(t, err)
	a, err := s.AddActivity(ctx, p.ID, activities.CategoryExercise, "Walk")
	require.NoError(t, err)
	p2, err := s.AddPet(ctx, "Luna", "Cat")
	require.NoError(t, err)

	assert.Less(t, p.ID, a.ID)
	assert.Less(t, a.ID, p2.ID)
}

func TestSession_Cards(t *testing.T) {
	ctx := context.Background()
	s := newMemSession(t)

	rex, err := s.AddPet(ctx, "Rex", "Dog")
	require.NoError(t, err)
	luna, err := s.AddPet(ctx, "Luna", "Cat")
	require.NoError(t, err)

	_, err = s.AddPreset(ctx, rex.ID, activities.PresetWalk)
	require.NoError(t, err)
	_, err = s.AddPreset(ctx, rex.ID, activities.PresetMeal)
	require.NoError(t, err)
	_, err = s.AddPreset(ctx, luna.ID, activities.PresetPlay)
	require.NoError(t, err)
	// huérfana: no aparece en ninguna tarjeta
	_, err = s.AddActivity(ctx, 999, activities.CategoryFood, "Meal")
	require.NoError(t, err)

	cards, err := s.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "Rex", cards[0].Pet.Name)
	require.Len(t, cards[0].Activities, 2)
	assert.Equal(t, "Meal", cards[0].Activities[0].Details)
	assert.Equal(t, "Walk", cards[0].Activities[1].Details)

	assert.Equal(t, "Luna", cards[1].Pet.Name)
	require.Len(t, cards[1].Activities, 1)

	all, err := s.ActivitiesService().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSession_OrphanActivityNeverLandsOnALaterPet(t *testing.T) {
	ctx := context.Background()
	s := newMemSession(t)

	// actividad para una mascota que todavía no existe, con un id chico
	_, err := s.AddActivity(ctx, 2, activities.CategoryFood, "Meal")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.AddPet(ctx, "Rex", "Dog")
		require.NoError(t, err)
	}

	cards, err := s.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	for _, c := range cards {
		assert.NotEqual(t, int64(2), c.Pet.ID)
		assert.Empty(t, c.Activities, "pet %d", c.Pet.ID)
	}
}

func TestSession_SubmitPet_ResetsDraftAndIgnoresStaleDraft(t *testing.T) {
	ctx := context.Background()
	s := newMemSession(t)
	s.SetDraft("stale", "stale")

	p, err := s.SubmitPet(ctx, "Rex", "Dog")
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, "Dog", p.Type)
	assert.Equal(t, Draft{}, s.Draft())
}

func TestSession_SubmitPet_ConcurrentDraftEditsDoNotLeak(t *testing.T) {
	ctx := context.Background()
	s := newMemSession(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := s.SubmitPet(ctx, fmt.Sprintf("pet-%d", i), fmt.Sprintf("type-%d", i))
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			s.SetDraft("other", "other")
		}()
	}
	wg.Wait()

	items, err := s.PetsService().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, n)
	for _, p := range items {
		assert.Equal(t, "type-"+p.Name[len("pet-"):], p.Type)
	}
}
