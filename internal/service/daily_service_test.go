package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/service"
)

func TestGetDailyCreatesDefaults(t *testing.T) {
	repos := newTestRepos(t)
	daily := service.NewDailyService(repos.dailyFood)

	record, err := daily.Get(context.Background(), "2024-05-10")
	require.NoError(t, err)
	assert.False(t, record.FastingDone)
	assert.Equal(t, domain.DefaultEatingStart, record.EatingStart)
	assert.Equal(t, domain.DefaultEatingEnd, record.EatingEnd)
	assert.Zero(t, record.WaterML)

	// The lazy record is persisted on first read.
	stored, err := repos.dailyFood.Get(context.Background(), "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, record.Date, stored.Date)
}

func TestUpdateDailyPatchSemantics(t *testing.T) {
	repos := newTestRepos(t)
	daily := service.NewDailyService(repos.dailyFood)
	ctx := context.Background()

	record, err := daily.Update(ctx, "2024-05-10", service.DailyPatch{FastingDone: b(true)})
	require.NoError(t, err)
	assert.True(t, record.FastingDone)
	// Untouched fields keep their defaults.
	assert.Equal(t, domain.DefaultEatingStart, record.EatingStart)

	// A window wrapping past midnight is allowed.
	record, err = daily.Update(ctx, "2024-05-10", service.DailyPatch{EatingStart: i(22), EatingEnd: i(4)})
	require.NoError(t, err)
	assert.Equal(t, 22, record.EatingStart)
	assert.Equal(t, 4, record.EatingEnd)
	assert.True(t, record.FastingDone)
}

func TestUpdateDailyRejectsOutOfRangeHours(t *testing.T) {
	repos := newTestRepos(t)
	daily := service.NewDailyService(repos.dailyFood)
	ctx := context.Background()

	_, err := daily.Update(ctx, "2024-05-10", service.DailyPatch{EatingStart: i(24)})
	assert.ErrorIs(t, err, service.ErrDailyValidation)
	_, err = daily.Update(ctx, "2024-05-10", service.DailyPatch{EatingEnd: i(-1)})
	assert.ErrorIs(t, err, service.ErrDailyValidation)

	// Failed validation leaves no record behind either.
	_, err = repos.dailyFood.Get(ctx, "2024-05-10")
	assert.Error(t, err)
}

func TestAddWaterAccumulatesAndClamps(t *testing.T) {
	repos := newTestRepos(t)
	daily := service.NewDailyService(repos.dailyFood)
	ctx := context.Background()

	record, err := daily.AddWater(ctx, "2024-05-10", 250)
	require.NoError(t, err)
	assert.Equal(t, 250, record.WaterML)

	record, err = daily.AddWater(ctx, "2024-05-10", 500)
	require.NoError(t, err)
	assert.Equal(t, 750, record.WaterML)

	record, err = daily.AddWater(ctx, "2024-05-10", -100)
	require.NoError(t, err)
	assert.Equal(t, 650, record.WaterML)
}

func TestAddWaterNeverGoesNegative(t *testing.T) {
	repos := newTestRepos(t)
	daily := service.NewDailyService(repos.dailyFood)
	ctx := context.Background()

	_, err := daily.AddWater(ctx, "2024-05-10", 250)
	require.NoError(t, err)

	record, err := daily.AddWater(ctx, "2024-05-10", -9999)
	require.NoError(t, err)
	assert.Equal(t, 0, record.WaterML)
}
