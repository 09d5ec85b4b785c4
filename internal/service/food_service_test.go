package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vbodnar/lifetrack-app/internal/service"
)

func TestCreateFoodRejectsDuplicateName(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)
	ctx := context.Background()

	_, err := foods.CreateFood(ctx, service.FoodInput{Name: "Rice", Kcal: 130})
	require.NoError(t, err)

	// Different case and trailing whitespace is still the same name.
	_, err = foods.CreateFood(ctx, service.FoodInput{Name: "rice "})
	assert.ErrorIs(t, err, service.ErrDuplicateFoodName)
}

func TestCreateFoodRequiresName(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)

	_, err := foods.CreateFood(context.Background(), service.FoodInput{Name: "   "})
	assert.ErrorIs(t, err, service.ErrFoodValidation)
}

func TestCreateFoodSanitizesNumbers(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)

	food, err := foods.CreateFood(context.Background(), service.FoodInput{
		Name:       "Weird",
		Kcal:       math.NaN(),
		Protein:    math.Inf(1),
		Carbs:      -5,
		TotalGrams: f64(-100),
	})
	require.NoError(t, err)
	assert.Zero(t, food.Kcal)
	assert.Zero(t, food.Protein)
	assert.Zero(t, food.Carbs)
	assert.Nil(t, food.TotalGrams)
}

func TestUpdateFoodConflictsExcludeSelf(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)
	ctx := context.Background()

	rice, err := foods.CreateFood(ctx, service.FoodInput{Name: "Rice", Kcal: 130})
	require.NoError(t, err)
	_, err = foods.CreateFood(ctx, service.FoodInput{Name: "Beans"})
	require.NoError(t, err)

	// Re-saving under its own name is fine.
	updated, err := foods.UpdateFood(ctx, rice.ID, service.FoodInput{Name: "Rice", Kcal: 135})
	require.NoError(t, err)
	assert.Equal(t, 135.0, updated.Kcal)

	// Renaming onto another entry conflicts.
	_, err = foods.UpdateFood(ctx, rice.ID, service.FoodInput{Name: "BEANS"})
	assert.ErrorIs(t, err, service.ErrDuplicateFoodName)
}

func TestUpdateFoodNotFound(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)

	_, err := foods.UpdateFood(context.Background(), 42, service.FoodInput{Name: "Ghost"})
	assert.ErrorIs(t, err, service.ErrFoodNotFound)
}

func TestListFoodsSortsAndFilters(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)
	ctx := context.Background()

	for _, name := range []string{"rice", "Beans", "Rice cakes", "Oats"} {
		_, err := foods.CreateFood(ctx, service.FoodInput{Name: name})
		require.NoError(t, err)
	}

	all, err := foods.ListFoods(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	// Ascending, case-sensitive byte order: uppercase sorts first.
	assert.Equal(t, "Beans", all[0].Name)
	assert.Equal(t, "Oats", all[1].Name)
	assert.Equal(t, "Rice cakes", all[2].Name)
	assert.Equal(t, "rice", all[3].Name)

	matched, err := foods.ListFoods(ctx, "RICE")
	require.NoError(t, err)
	require.Len(t, matched, 2)
}

func TestDeleteFoodCascadesLogs(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)
	logs := service.NewLogService(repos.logs, repos.foods)
	ctx := context.Background()

	rice, err := foods.CreateFood(ctx, service.FoodInput{Name: "Rice", Kcal: 130})
	require.NoError(t, err)
	beans, err := foods.CreateFood(ctx, service.FoodInput{Name: "Beans", Kcal: 110})
	require.NoError(t, err)

	for _, foodID := range []int64{rice.ID, rice.ID, beans.ID} {
		_, err := logs.CreateLog(ctx, service.CreateLogInput{FoodID: foodID})
		require.NoError(t, err)
	}

	require.NoError(t, foods.DeleteFood(ctx, rice.ID))

	remaining, err := repos.logs.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, beans.ID, remaining[0].FoodID)
}

func TestDeleteFoodNotFound(t *testing.T) {
	repos := newTestRepos(t)
	foods := service.NewFoodService(repos.foods, repos.logs)
	assert.ErrorIs(t, foods.DeleteFood(context.Background(), 42), service.ErrFoodNotFound)
}
