package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vbodnar/lifetrack-app/internal/repository"
	"vbodnar/lifetrack-app/internal/repository/document"
	"vbodnar/lifetrack-app/internal/store"
)

type testRepos struct {
	foods        repository.FoodRepository
	logs         repository.FoodLogRepository
	dailyFood    repository.DailyFoodRepository
	kettlebell   repository.KettlebellRepository
	pushUps      repository.PushUpRepository
	dailyWorkout repository.DailyWorkoutRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	docs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return testRepos{
		foods:        document.NewFoodRepository(docs),
		logs:         document.NewFoodLogRepository(docs),
		dailyFood:    document.NewDailyFoodRepository(docs),
		kettlebell:   document.NewKettlebellRepository(docs),
		pushUps:      document.NewPushUpRepository(docs),
		dailyWorkout: document.NewDailyWorkoutRepository(docs),
	}
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
func b(v bool) *bool         { return &v }
