package document

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
	"vbodnar/lifetrack-app/internal/store"
)

func newTestStore(t *testing.T) store.DocumentStore {
	t.Helper()
	docs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return docs
}

func TestFoodRepositoryAssignsMonotonicIDs(t *testing.T) {
	repo := NewFoodRepository(newTestStore(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.FoodItem{Name: "Rice"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.FoodItem{Name: "Eggs"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	// Deleting does not recycle ids.
	require.NoError(t, repo.Delete(ctx, second))
	third, err := repo.Create(ctx, &domain.FoodItem{Name: "Oats"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third)
}

func TestFoodRepositoryFindByNameNormalizes(t *testing.T) {
	repo := NewFoodRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.FoodItem{Name: "Rice"})
	require.NoError(t, err)

	found, err := repo.FindByName(ctx, "  rICE ")
	require.NoError(t, err)
	assert.Equal(t, "Rice", found.Name)

	_, err = repo.FindByName(ctx, "beans")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFoodRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewFoodRepository(newTestStore(t))
	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFoodLogRepositoryDeleteByFoodID(t *testing.T) {
	docs := newTestStore(t)
	repo := NewFoodLogRepository(docs)
	ctx := context.Background()

	for _, foodID := range []int64{1, 2, 1, 1} {
		_, err := repo.Create(ctx, &domain.FoodLogEntry{FoodID: foodID, Servings: 1, LoggedAt: time.Now()})
		require.NoError(t, err)
	}

	removed, err := repo.DeleteByFoodID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(2), remaining[0].FoodID)
}

func TestCollectionsAreIsolated(t *testing.T) {
	docs := newTestStore(t)
	foodRepo := NewFoodRepository(docs)
	kbRepo := NewKettlebellRepository(docs)
	ctx := context.Background()

	_, err := foodRepo.Create(ctx, &domain.FoodItem{Name: "Rice"})
	require.NoError(t, err)

	// Each collection keeps its own counter.
	id, err := kbRepo.Create(ctx, &domain.KettlebellEntry{Date: "2024-01-01", Weight: 24, Series: 1, Reps: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestDailyFoodRepositoryPutUpserts(t *testing.T) {
	repo := NewDailyFoodRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "2024-01-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	record := domain.NewDailyFoodRecord("2024-01-01")
	require.NoError(t, repo.Put(ctx, record))

	record.WaterML = 500
	require.NoError(t, repo.Put(ctx, record))

	got, err := repo.Get(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 500, got.WaterML)

	// One record per day, updated in place.
	other, err := repo.Get(ctx, "2024-01-02")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, other)
}

func TestKettlebellRepositoryUpdate(t *testing.T) {
	repo := NewKettlebellRepository(newTestStore(t))
	ctx := context.Background()

	entry := &domain.KettlebellEntry{Date: "2024-01-01", Weight: 24, Series: 1, Reps: 10}
	_, err := repo.Create(ctx, entry)
	require.NoError(t, err)

	entry.Reps = 15
	require.NoError(t, repo.Update(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Reps)

	missing := &domain.KettlebellEntry{ID: 99}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrNotFound)
}
