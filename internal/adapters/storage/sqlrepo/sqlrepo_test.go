package sqlrepo_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-health-tracker/internal/adapters/storage/sqlite"
	"pet-health-tracker/internal/adapters/storage/sqlrepo"
	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/domain/pets"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "pets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlrepo.Migrate(context.Background(), db))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, sqlrepo.Migrate(context.Background(), db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestPetsRepo_RoundTripScopedBySession(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	a := sqlrepo.NewPetsRepo(db, "session-a")
	b := sqlrepo.NewPetsRepo(db, "session-b")

	created := time.Date(2025, 12, 22, 10, 0, 0, 123456789, time.UTC)
	require.NoError(t, a.Append(ctx, pets.Pet{ID: 1, Name: "Rex", Type: "Dog", CreatedAt: created}))
	require.NoError(t, a.Append(ctx, pets.Pet{ID: 2, Name: "", Type: "", CreatedAt: created}))
	require.NoError(t, b.Append(ctx, pets.Pet{ID: 1, Name: "Luna", Type: "Cat", CreatedAt: created}))

	// mismo id en la misma sesión: PK duplicada
	assert.Error(t, a.Append(ctx, pets.Pet{ID: 1, Name: "dup"}))

	items, err := a.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Rex", items[0].Name)
	assert.True(t, items[0].CreatedAt.Equal(created))
	assert.Equal(t, "", items[1].Name)

	p, err := b.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Luna", p.Name)

	_, err = b.GetByID(ctx, 2)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestActivitiesRepo_ListInsertionOrderAndPurge(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	repo := sqlrepo.NewActivitiesRepo(db, "session-a")
	other := sqlrepo.NewActivitiesRepo(db, "session-b")

	t1 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, activities.Activity{ID: 1, PetID: 1, Type: activities.CategoryExercise, Details: "Walk", Timestamp: t1}))
	require.NoError(t, repo.Append(ctx, activities.Activity{ID: 2, PetID: 1, Type: activities.CategoryFood, Details: "Meal", Timestamp: t1.Add(time.Minute)}))
	require.NoError(t, other.Append(ctx, activities.Activity{ID: 1, PetID: 1, Type: activities.CategoryFood, Details: "Meal", Timestamp: t1}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Walk", items[0].Details)
	assert.Equal(t, activities.CategoryFood, items[1].Type)

	view := activities.View(items, 1)
	assert.Equal(t, "Meal", view[0].Details)

	require.NoError(t, sqlrepo.Purge(ctx, db, "session-a"))

	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = other.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1, "purge must only touch its own session")

	require.NoError(t, sqlrepo.Reset(ctx, db))
	items, err = other.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
