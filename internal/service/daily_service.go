package service

import (
	"context"
	"errors"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrDailyValidation = errors.New("daily record validation failed")
)

// DailyPatch updates the fasting window state. Absent fields keep their
// stored values.
type DailyPatch struct {
	FastingDone *bool
	EatingStart *int
	EatingEnd   *int
	WaterML     *int
}

// DailyService manages per-day fasting and hydration records.
type DailyService interface {
	// Get returns the record for a date, creating it with defaults on
	// first access.
	Get(ctx context.Context, date string) (*domain.DailyFoodRecord, error)
	Update(ctx context.Context, date string, patch DailyPatch) (*domain.DailyFoodRecord, error)
	// AddWater applies a signed delta to water_ml, clamped at zero.
	AddWater(ctx context.Context, date string, delta int) (*domain.DailyFoodRecord, error)
}

type dailyService struct {
	dailyRepo repository.DailyFoodRepository
}

// NewDailyService creates a new instance of dailyService.
func NewDailyService(dailyRepo repository.DailyFoodRepository) DailyService {
	return &dailyService{dailyRepo: dailyRepo}
}

// getOrCreate materializes the lazy default record on first access so
// reads and writes observe the same state.
func (s *dailyService) getOrCreate(ctx context.Context, date string) (*domain.DailyFoodRecord, error) {
	record, err := s.dailyRepo.Get(ctx, date)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	fresh := domain.NewDailyFoodRecord(date)
	if err := s.dailyRepo.Put(ctx, fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *dailyService) Get(ctx context.Context, date string) (*domain.DailyFoodRecord, error) {
	return s.getOrCreate(ctx, date)
}

func (s *dailyService) Update(ctx context.Context, date string, patch DailyPatch) (*domain.DailyFoodRecord, error) {
	// Hour-of-day bounds; the eating window itself may wrap midnight.
	if patch.EatingStart != nil && (*patch.EatingStart < 0 || *patch.EatingStart > 23) {
		return nil, ErrDailyValidation
	}
	if patch.EatingEnd != nil && (*patch.EatingEnd < 0 || *patch.EatingEnd > 23) {
		return nil, ErrDailyValidation
	}

	record, err := s.getOrCreate(ctx, date)
	if err != nil {
		return nil, err
	}

	if patch.FastingDone != nil {
		record.FastingDone = *patch.FastingDone
	}
	if patch.EatingStart != nil {
		record.EatingStart = *patch.EatingStart
	}
	if patch.EatingEnd != nil {
		record.EatingEnd = *patch.EatingEnd
	}
	if patch.WaterML != nil {
		record.WaterML = *patch.WaterML
		if record.WaterML < 0 {
			record.WaterML = 0
		}
	}

	if err := s.dailyRepo.Put(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *dailyService) AddWater(ctx context.Context, date string, delta int) (*domain.DailyFoodRecord, error) {
	record, err := s.getOrCreate(ctx, date)
	if err != nil {
		return nil, err
	}

	record.WaterML += delta
	if record.WaterML < 0 {
		record.WaterML = 0
	}

	if err := s.dailyRepo.Put(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}
