package domain

import (
	"strings"
	"time"
)

// FoodItem is a reusable catalog entry. Nutrient values are per serving;
// log entries scale them by their own servings multiplier.
type FoodItem struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Kcal       float64   `json:"kcal"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fats       float64   `json:"fats"`
	Sodium     float64   `json:"sodium"`
	Caffeine   float64   `json:"caffeine"`
	TotalGrams *float64  `json:"total_grams"`
	CreatedAt  time.Time `json:"created_at"`
}

// FoodLogEntry records one consumption of a catalog item. Joined fields
// (name, nutrients) are never stored; they are computed at read time.
type FoodLogEntry struct {
	ID       int64     `json:"id"`
	FoodID   int64     `json:"food_id"`
	Servings float64   `json:"servings"`
	LoggedAt time.Time `json:"logged_at"`
}

// DailyFoodRecord holds per-day fasting and hydration state. Records are
// created lazily on first access with these defaults.
type DailyFoodRecord struct {
	Date        string `json:"date"`
	FastingDone bool   `json:"fasting_done"`
	EatingStart int    `json:"eating_start"`
	EatingEnd   int    `json:"eating_end"`
	WaterML     int    `json:"water_ml"`
}

// Default eating window: 13:00-20:00. The window may wrap past midnight.
const (
	DefaultEatingStart = 13
	DefaultEatingEnd   = 20
)

// NewDailyFoodRecord returns the lazy default record for a date.
func NewDailyFoodRecord(date string) DailyFoodRecord {
	return DailyFoodRecord{
		Date:        date,
		FastingDone: false,
		EatingStart: DefaultEatingStart,
		EatingEnd:   DefaultEatingEnd,
		WaterML:     0,
	}
}

// UnknownFoodName is the sentinel used when a log entry references a food
// that no longer exists in the catalog.
const UnknownFoodName = "Unknown"

// NormalizeFoodName produces the canonical form used for uniqueness checks:
// surrounding whitespace stripped, lowercased.
func NormalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
