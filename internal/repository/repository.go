package repository

import (
	"context"

	"vbodnar/lifetrack-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// FoodRepository defines the interface for the food catalog collection.
type FoodRepository interface {
	List(ctx context.Context) ([]domain.FoodItem, error)
	GetByID(ctx context.Context, id int64) (*domain.FoodItem, error)
	// FindByName matches on the normalized name (case and surrounding
	// whitespace insensitive). Returns ErrNotFound when absent.
	FindByName(ctx context.Context, name string) (*domain.FoodItem, error)
	Create(ctx context.Context, food *domain.FoodItem) (int64, error)
	Update(ctx context.Context, food *domain.FoodItem) error
	Delete(ctx context.Context, id int64) error
}

// FoodLogRepository defines the interface for food log entries.
type FoodLogRepository interface {
	List(ctx context.Context) ([]domain.FoodLogEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.FoodLogEntry, error)
	Create(ctx context.Context, entry *domain.FoodLogEntry) (int64, error)
	Update(ctx context.Context, entry *domain.FoodLogEntry) error
	Delete(ctx context.Context, id int64) error
	// DeleteByFoodID removes every entry referencing foodID and reports
	// how many were removed. Used by the catalog cascade delete.
	DeleteByFoodID(ctx context.Context, foodID int64) (int, error)
}

// DailyFoodRepository defines the interface for per-day fasting/water
// records. Get returns ErrNotFound for a day never written; the lazy
// default is the caller's concern.
type DailyFoodRepository interface {
	Get(ctx context.Context, date string) (*domain.DailyFoodRecord, error)
	Put(ctx context.Context, record domain.DailyFoodRecord) error
}

// KettlebellRepository defines the interface for kettlebell entries.
type KettlebellRepository interface {
	List(ctx context.Context) ([]domain.KettlebellEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.KettlebellEntry, error)
	Create(ctx context.Context, entry *domain.KettlebellEntry) (int64, error)
	Update(ctx context.Context, entry *domain.KettlebellEntry) error
	Delete(ctx context.Context, id int64) error
}

// PushUpRepository defines the interface for push-up entries.
type PushUpRepository interface {
	List(ctx context.Context) ([]domain.PushUpEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.PushUpEntry, error)
	Create(ctx context.Context, entry *domain.PushUpEntry) (int64, error)
	Update(ctx context.Context, entry *domain.PushUpEntry) error
	Delete(ctx context.Context, id int64) error
}

// DailyWorkoutRepository defines the interface for per-day timer state.
type DailyWorkoutRepository interface {
	Get(ctx context.Context, date string) (*domain.DailyWorkoutRecord, error)
	Put(ctx context.Context, record domain.DailyWorkoutRecord) error
}
