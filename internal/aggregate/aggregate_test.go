package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vbodnar/lifetrack-app/internal/domain"
)

func kb(weight float64, series, reps int, singleHanded bool) domain.KettlebellEntry {
	return domain.KettlebellEntry{
		Date:         "2024-01-01",
		Weight:       weight,
		Series:       series,
		Reps:         reps,
		SingleHanded: singleHanded,
		CreatedAt:    time.Now(),
	}
}

func TestKettlebellVolume(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.KettlebellEntry
		want  float64
	}{
		{"two handed doubles the load", kb(24, 1, 10, false), 480},
		{"single handed counts once", kb(24, 1, 10, true), 240},
		{"series multiply reps", kb(16, 3, 10, false), 960},
		{"fractional weight", kb(12.5, 1, 20, true), 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KettlebellVolume(tt.entry))
		})
	}
}

func TestSummarizeKettlebellDay(t *testing.T) {
	entries := []domain.KettlebellEntry{
		kb(24, 1, 10, false),
		kb(24, 1, 15, true),
		kb(16, 2, 10, false),
	}
	s := SummarizeKettlebellDay(entries)
	assert.Equal(t, 45, s.TotalReps)
	assert.Equal(t, 480.0+360.0+640.0, s.TotalVolume)
	// Entries, not sets.
	assert.Equal(t, 3, s.TotalEntries)
}

func TestSummarizeKettlebellDayEmpty(t *testing.T) {
	s := SummarizeKettlebellDay(nil)
	assert.Zero(t, s.TotalReps)
	assert.Zero(t, s.TotalVolume)
	assert.Zero(t, s.TotalEntries)
}

func TestSummarizePushUpDay(t *testing.T) {
	entries := []domain.PushUpEntry{
		{Series: 1, Reps: 20},
		{Series: 3, Reps: 10},
	}
	s := SummarizePushUpDay(entries)
	assert.Equal(t, 50, s.TotalReps)
	assert.Equal(t, 2, s.TotalEntries)

	assert.Zero(t, SummarizePushUpDay(nil).TotalReps)
}

func TestSummarizeFoodDay(t *testing.T) {
	foods := map[int64]domain.FoodItem{
		1: {ID: 1, Kcal: 100, Protein: 10, Carbs: 20, Fats: 5, Sodium: 50, Caffeine: 0},
		2: {ID: 2, Kcal: 250, Protein: 3.5, Carbs: 30, Fats: 12, Sodium: 400, Caffeine: 80},
	}
	logs := []domain.FoodLogEntry{
		{ID: 1, FoodID: 1, Servings: 2},
		{ID: 2, FoodID: 2, Servings: 0.5},
	}
	totals := SummarizeFoodDay(logs, foods)
	assert.InDelta(t, 325, totals.Kcal, 1e-9)
	assert.InDelta(t, 21.75, totals.Protein, 1e-9)
	assert.InDelta(t, 55, totals.Carbs, 1e-9)
	assert.InDelta(t, 16, totals.Fats, 1e-9)
	assert.InDelta(t, 300, totals.Sodium, 1e-9)
	assert.InDelta(t, 40, totals.Caffeine, 1e-9)
	assert.Equal(t, 2, totals.TotalEntries)
}

func TestSummarizeFoodDayDanglingReferenceStillCounts(t *testing.T) {
	foods := map[int64]domain.FoodItem{
		1: {ID: 1, Kcal: 100},
	}
	logs := []domain.FoodLogEntry{
		{ID: 1, FoodID: 1, Servings: 1},
		{ID: 2, FoodID: 99, Servings: 3}, // food no longer exists
	}
	totals := SummarizeFoodDay(logs, foods)
	assert.InDelta(t, 100, totals.Kcal, 1e-9)
	assert.Equal(t, 2, totals.TotalEntries)
}

func TestSummarizeFoodDayEmpty(t *testing.T) {
	totals := SummarizeFoodDay(nil, nil)
	assert.Zero(t, totals.Kcal)
	assert.Zero(t, totals.TotalEntries)
}

func TestKettlebellHistoryNoCrossDayLeakage(t *testing.T) {
	entries := []domain.KettlebellEntry{
		{Date: "2024-01-01", Weight: 24, Series: 1, Reps: 10, SingleHanded: true},
		{Date: "2024-01-02", Weight: 24, Series: 1, Reps: 5, SingleHanded: true},
		{Date: "2024-01-01", Weight: 16, Series: 1, Reps: 10, SingleHanded: false},
	}
	history := KettlebellHistory(entries)
	assert.Len(t, history, 2)
	assert.Equal(t, 20, history["2024-01-01"].Reps)
	assert.InDelta(t, 240+320, history["2024-01-01"].Volume, 1e-9)
	assert.Equal(t, 5, history["2024-01-02"].Reps)
	assert.InDelta(t, 120, history["2024-01-02"].Volume, 1e-9)
}

func TestPushUpHistory(t *testing.T) {
	entries := []domain.PushUpEntry{
		{Date: "2024-01-01", Series: 1, Reps: 10},
		{Date: "2024-01-02", Series: 1, Reps: 5},
		{Date: "2024-01-01", Series: 2, Reps: 15},
	}
	history := PushUpHistory(entries)
	assert.Len(t, history, 2)
	assert.Equal(t, 40, history["2024-01-01"].Reps)
	assert.Equal(t, 5, history["2024-01-02"].Reps)
}

func TestHistoryEmpty(t *testing.T) {
	assert.Empty(t, KettlebellHistory(nil))
	assert.Empty(t, PushUpHistory(nil))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 123.0, RoundWhole(123.4))
	assert.Equal(t, 124.0, RoundWhole(123.5))
	assert.Equal(t, 12.3, RoundTenth(12.34))
	assert.Equal(t, 12.4, RoundTenth(12.36))
	assert.Equal(t, 0.0, RoundWhole(0))
}
