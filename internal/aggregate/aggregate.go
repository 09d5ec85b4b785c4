// Package aggregate folds dated ledger entries into per-day or per-range
// numeric summaries. Everything here is pure: no I/O, no clock access,
// and empty input always yields a zero-valued summary rather than an error.
package aggregate

import (
	"math"

	"vbodnar/lifetrack-app/internal/domain"
)

// KettlebellSummary is the per-day rollup for kettlebell entries.
// TotalEntries counts entries, not sets.
type KettlebellSummary struct {
	TotalReps    int     `json:"total_reps"`
	TotalVolume  float64 `json:"total_volume"`
	TotalEntries int     `json:"total_entries"`
}

// PushUpSummary is the per-day rollup for push-up entries.
type PushUpSummary struct {
	TotalReps    int `json:"total_reps"`
	TotalEntries int `json:"total_entries"`
}

// NutrientTotals accumulates a day's food intake at full precision.
// TotalEntries counts every log entry in scope, including entries whose
// food reference no longer resolves; those contribute zero to the sums.
type NutrientTotals struct {
	Kcal         float64 `json:"kcal"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	Sodium       float64 `json:"sodium"`
	Caffeine     float64 `json:"caffeine"`
	TotalEntries int     `json:"total_entries"`
}

// KettlebellDayTotals is one bucket of the all-time history view.
type KettlebellDayTotals struct {
	Reps   int     `json:"reps"`
	Volume float64 `json:"volume"`
}

// PushUpDayTotals is one bucket of the all-time push-up history view.
type PushUpDayTotals struct {
	Reps int `json:"reps"`
}

// WorkoutSummary combines both workout domains for a single day. The
// timer fields are independently maintained state from the daily record,
// not derived from entries.
type WorkoutSummary struct {
	Kettlebell     KettlebellSummary `json:"kettlebell"`
	PushUps        PushUpSummary     `json:"pushups"`
	KettlebellTime int               `json:"kettlebell_time"`
	PushupTime     int               `json:"pushup_time"`
}

// KettlebellReps returns the rep contribution of a single entry.
func KettlebellReps(e domain.KettlebellEntry) int {
	return e.Series * e.Reps
}

// KettlebellVolume returns the workload proxy for one entry:
// weight * total reps * hand multiplier. Two-handed swings move the
// load with both arms, so they count double.
func KettlebellVolume(e domain.KettlebellEntry) float64 {
	multiplier := 2.0
	if e.SingleHanded {
		multiplier = 1.0
	}
	return e.Weight * float64(e.Series*e.Reps) * multiplier
}

// PushUpReps returns the rep contribution of a single entry.
func PushUpReps(e domain.PushUpEntry) int {
	return e.Series * e.Reps
}

// SummarizeKettlebellDay folds entries already scoped to one day.
func SummarizeKettlebellDay(entries []domain.KettlebellEntry) KettlebellSummary {
	var s KettlebellSummary
	for _, e := range entries {
		s.TotalReps += KettlebellReps(e)
		s.TotalVolume += KettlebellVolume(e)
		s.TotalEntries++
	}
	return s
}

// SummarizePushUpDay folds entries already scoped to one day.
func SummarizePushUpDay(entries []domain.PushUpEntry) PushUpSummary {
	var s PushUpSummary
	for _, e := range entries {
		s.TotalReps += PushUpReps(e)
		s.TotalEntries++
	}
	return s
}

// SummarizeFoodDay folds log entries against the catalog. A dangling
// food reference skips the nutrient contribution but still increments
// TotalEntries.
func SummarizeFoodDay(logs []domain.FoodLogEntry, foodsByID map[int64]domain.FoodItem) NutrientTotals {
	var t NutrientTotals
	for _, entry := range logs {
		t.TotalEntries++
		food, ok := foodsByID[entry.FoodID]
		if !ok {
			continue
		}
		t.Kcal += food.Kcal * entry.Servings
		t.Protein += food.Protein * entry.Servings
		t.Carbs += food.Carbs * entry.Servings
		t.Fats += food.Fats * entry.Servings
		t.Sodium += food.Sodium * entry.Servings
		t.Caffeine += food.Caffeine * entry.Servings
	}
	return t
}

// KettlebellHistory groups the full entry set by its stored date field,
// producing one totals bucket per day. History buckets carry no entry
// counts.
func KettlebellHistory(entries []domain.KettlebellEntry) map[string]KettlebellDayTotals {
	history := make(map[string]KettlebellDayTotals)
	for _, e := range entries {
		day := history[e.Date]
		day.Reps += KettlebellReps(e)
		day.Volume += KettlebellVolume(e)
		history[e.Date] = day
	}
	return history
}

// PushUpHistory groups the full entry set by its stored date field.
func PushUpHistory(entries []domain.PushUpEntry) map[string]PushUpDayTotals {
	history := make(map[string]PushUpDayTotals)
	for _, e := range entries {
		day := history[e.Date]
		day.Reps += PushUpReps(e)
		history[e.Date] = day
	}
	return history
}

// RoundWhole rounds calorie and milligram quantities to the nearest
// whole unit. Presentation-boundary only; storage keeps full precision.
func RoundWhole(v float64) float64 {
	return math.Round(v)
}

// RoundTenth rounds gram quantities to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
