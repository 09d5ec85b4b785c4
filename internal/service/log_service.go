package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"vbodnar/lifetrack-app/internal/aggregate"
	"vbodnar/lifetrack-app/internal/dates"
	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrLogNotFound   = errors.New("log entry not found")
	ErrLogValidation = errors.New("log entry validation failed")
)

// FoodLogView is the display-ready joined row: log fields plus the
// referenced food's name and its nutrients scaled by servings. Never
// persisted.
type FoodLogView struct {
	ID       int64     `json:"id"`
	FoodID   int64     `json:"food_id"`
	Name     string    `json:"name"`
	Servings float64   `json:"servings"`
	LoggedAt time.Time `json:"logged_at"`
	Kcal     float64   `json:"kcal"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	Sodium   float64   `json:"sodium"`
	Caffeine float64   `json:"caffeine"`
}

// CreateLogInput carries a new log entry. Servings defaults to 1 and
// LoggedAt to now when absent.
type CreateLogInput struct {
	FoodID   int64
	Servings *float64
	LoggedAt *time.Time
}

// LogPatch updates servings and/or the logged-at timestamp. Absent
// fields keep their stored values.
type LogPatch struct {
	Servings *float64
	LoggedAt *time.Time
}

// LogService manages food log entries and their day summaries.
type LogService interface {
	ListByDate(ctx context.Context, date string) ([]FoodLogView, error)
	Summary(ctx context.Context, date string) (aggregate.NutrientTotals, error)
	CreateLog(ctx context.Context, input CreateLogInput) (*FoodLogView, error)
	UpdateLog(ctx context.Context, id int64, patch LogPatch) (*FoodLogView, error)
	DeleteLog(ctx context.Context, id int64) error
}

type logService struct {
	logRepo  repository.FoodLogRepository
	foodRepo repository.FoodRepository
}

// NewLogService creates a new instance of logService.
func NewLogService(logRepo repository.FoodLogRepository, foodRepo repository.FoodRepository) LogService {
	return &logService{
		logRepo:  logRepo,
		foodRepo: foodRepo,
	}
}

// sanitizeServings keeps only a finite positive multiplier, falling
// back to the default of 1.
func sanitizeServings(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return 1
	}
	return *v
}

// joinEntry builds the denormalized view row. A dangling food reference
// degrades to the sentinel name with zero nutrients instead of failing.
func joinEntry(entry domain.FoodLogEntry, foodsByID map[int64]domain.FoodItem) FoodLogView {
	view := FoodLogView{
		ID:       entry.ID,
		FoodID:   entry.FoodID,
		Name:     domain.UnknownFoodName,
		Servings: entry.Servings,
		LoggedAt: entry.LoggedAt,
	}
	food, ok := foodsByID[entry.FoodID]
	if !ok {
		return view
	}
	view.Name = food.Name
	view.Kcal = food.Kcal * entry.Servings
	view.Protein = food.Protein * entry.Servings
	view.Carbs = food.Carbs * entry.Servings
	view.Fats = food.Fats * entry.Servings
	view.Sodium = food.Sodium * entry.Servings
	view.Caffeine = food.Caffeine * entry.Servings
	return view
}

func (s *logService) catalogByID(ctx context.Context) (map[int64]domain.FoodItem, error) {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.FoodItem, len(foods))
	for _, food := range foods {
		byID[food.ID] = food
	}
	return byID, nil
}

// entriesForDate filters by the bucketed local day of logged_at. Food
// logs bucket by timestamp at read time, unlike workout entries which
// carry a stored date field.
func (s *logService) entriesForDate(ctx context.Context, date string) ([]domain.FoodLogEntry, error) {
	entries, err := s.logRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	scoped := entries[:0]
	for _, entry := range entries {
		if dates.Key(entry.LoggedAt) == date {
			scoped = append(scoped, entry)
		}
	}
	return scoped, nil
}

func (s *logService) ListByDate(ctx context.Context, date string) ([]FoodLogView, error) {
	entries, err := s.entriesForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	byID, err := s.catalogByID(ctx)
	if err != nil {
		return nil, err
	}

	// Most recent first.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LoggedAt.After(entries[j].LoggedAt)
	})

	views := make([]FoodLogView, len(entries))
	for i, entry := range entries {
		views[i] = joinEntry(entry, byID)
	}
	return views, nil
}

func (s *logService) Summary(ctx context.Context, date string) (aggregate.NutrientTotals, error) {
	entries, err := s.entriesForDate(ctx, date)
	if err != nil {
		return aggregate.NutrientTotals{}, err
	}
	byID, err := s.catalogByID(ctx)
	if err != nil {
		return aggregate.NutrientTotals{}, err
	}
	return aggregate.SummarizeFoodDay(entries, byID), nil
}

func (s *logService) CreateLog(ctx context.Context, input CreateLogInput) (*FoodLogView, error) {
	// The referenced food must exist at creation time; no orphan creation.
	if _, err := s.foodRepo.GetByID(ctx, input.FoodID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	loggedAt := time.Now()
	if input.LoggedAt != nil {
		loggedAt = *input.LoggedAt
	}

	entry := &domain.FoodLogEntry{
		FoodID:   input.FoodID,
		Servings: sanitizeServings(input.Servings),
		LoggedAt: loggedAt,
	}
	if _, err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	byID, err := s.catalogByID(ctx)
	if err != nil {
		return nil, err
	}
	view := joinEntry(*entry, byID)
	return &view, nil
}

func (s *logService) UpdateLog(ctx context.Context, id int64, patch LogPatch) (*FoodLogView, error) {
	existing, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	if patch.Servings != nil {
		existing.Servings = sanitizeServings(patch.Servings)
	}
	if patch.LoggedAt != nil {
		existing.LoggedAt = *patch.LoggedAt
	}

	if err := s.logRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	byID, err := s.catalogByID(ctx)
	if err != nil {
		return nil, err
	}
	view := joinEntry(*existing, byID)
	return &view, nil
}

func (s *logService) DeleteLog(ctx context.Context, id int64) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return nil
}
