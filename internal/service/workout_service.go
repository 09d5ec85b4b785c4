package service

import (
	"context"
	"errors"
	"math"
	"sort"

	"vbodnar/lifetrack-app/internal/aggregate"
	"vbodnar/lifetrack-app/internal/dates"
	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrEntryNotFound     = errors.New("workout entry not found")
	ErrWorkoutValidation = errors.New("workout entry validation failed")
)

// KettlebellInput carries a new kettlebell set. Date defaults to today;
// series defaults to 1 (the UI always logs one series per entry, the
// schema allows more).
type KettlebellInput struct {
	Date         string
	Weight       float64
	Series       *int
	Reps         int
	SingleHanded bool
}

// KettlebellPatch edits an existing entry; absent fields keep their
// stored values.
type KettlebellPatch struct {
	Date         *string
	Weight       *float64
	Series       *int
	Reps         *int
	SingleHanded *bool
}

// PushUpInput carries a new push-up set.
type PushUpInput struct {
	Date   string
	Series *int
	Reps   int
}

// PushUpPatch edits an existing push-up entry.
type PushUpPatch struct {
	Date   *string
	Series *int
	Reps   *int
}

// TimerPatch overwrites the per-day timer state. Absent fields keep
// their stored values; updates never accumulate.
type TimerPatch struct {
	KettlebellTime *int
	PushupTime     *int
}

// WorkoutHistory is the all-time per-day totals view for heatmaps.
type WorkoutHistory struct {
	Kettlebell map[string]aggregate.KettlebellDayTotals `json:"kettlebell"`
	PushUps    map[string]aggregate.PushUpDayTotals     `json:"pushups"`
}

// WorkoutService manages kettlebell and push-up entries, the per-day
// timer record, and the derived summaries.
type WorkoutService interface {
	ListKettlebellDay(ctx context.Context, date string) ([]domain.KettlebellEntry, aggregate.KettlebellSummary, error)
	CreateKettlebell(ctx context.Context, input KettlebellInput) (*domain.KettlebellEntry, aggregate.KettlebellSummary, error)
	UpdateKettlebell(ctx context.Context, id int64, patch KettlebellPatch) (*domain.KettlebellEntry, aggregate.KettlebellSummary, error)
	DeleteKettlebell(ctx context.Context, id int64) error

	ListPushUpDay(ctx context.Context, date string) ([]domain.PushUpEntry, aggregate.PushUpSummary, error)
	CreatePushUp(ctx context.Context, input PushUpInput) (*domain.PushUpEntry, aggregate.PushUpSummary, error)
	UpdatePushUp(ctx context.Context, id int64, patch PushUpPatch) (*domain.PushUpEntry, aggregate.PushUpSummary, error)
	DeletePushUp(ctx context.Context, id int64) error

	GetDaily(ctx context.Context, date string) (*domain.DailyWorkoutRecord, error)
	UpdateDaily(ctx context.Context, date string, patch TimerPatch) (*domain.DailyWorkoutRecord, error)

	History(ctx context.Context) (*WorkoutHistory, error)
	Summary(ctx context.Context, date string) (*aggregate.WorkoutSummary, error)
}

type workoutService struct {
	kettlebellRepo repository.KettlebellRepository
	pushUpRepo     repository.PushUpRepository
	dailyRepo      repository.DailyWorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	kettlebellRepo repository.KettlebellRepository,
	pushUpRepo repository.PushUpRepository,
	dailyRepo repository.DailyWorkoutRepository,
) WorkoutService {
	return &workoutService{
		kettlebellRepo: kettlebellRepo,
		pushUpRepo:     pushUpRepo,
		dailyRepo:      dailyRepo,
	}
}

func resolveDate(date string) (string, error) {
	if date == "" {
		return dates.Today(), nil
	}
	if !dates.Valid(date) {
		return "", ErrWorkoutValidation
	}
	return date, nil
}

func resolveSeries(series *int) (int, error) {
	if series == nil {
		return 1, nil
	}
	if *series <= 0 {
		return 0, ErrWorkoutValidation
	}
	return *series, nil
}

// --- Kettlebell ---

func (s *workoutService) kettlebellForDay(ctx context.Context, date string) ([]domain.KettlebellEntry, error) {
	entries, err := s.kettlebellRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	scoped := entries[:0]
	for _, e := range entries {
		if e.Date == date {
			scoped = append(scoped, e)
		}
	}
	// Within a day, most recent first.
	sort.Slice(scoped, func(i, j int) bool {
		return scoped[i].CreatedAt.After(scoped[j].CreatedAt)
	})
	return scoped, nil
}

func (s *workoutService) kettlebellDaySummary(ctx context.Context, date string) (aggregate.KettlebellSummary, error) {
	entries, err := s.kettlebellForDay(ctx, date)
	if err != nil {
		return aggregate.KettlebellSummary{}, err
	}
	return aggregate.SummarizeKettlebellDay(entries), nil
}

func (s *workoutService) ListKettlebellDay(ctx context.Context, date string) ([]domain.KettlebellEntry, aggregate.KettlebellSummary, error) {
	entries, err := s.kettlebellForDay(ctx, date)
	if err != nil {
		return nil, aggregate.KettlebellSummary{}, err
	}
	return entries, aggregate.SummarizeKettlebellDay(entries), nil
}

func (s *workoutService) CreateKettlebell(ctx context.Context, input KettlebellInput) (*domain.KettlebellEntry, aggregate.KettlebellSummary, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, aggregate.KettlebellSummary{}, err
	}
	series, err := resolveSeries(input.Series)
	if err != nil {
		return nil, aggregate.KettlebellSummary{}, err
	}
	if input.Weight <= 0 || math.IsNaN(input.Weight) || math.IsInf(input.Weight, 0) {
		return nil, aggregate.KettlebellSummary{}, ErrWorkoutValidation
	}
	if input.Reps <= 0 {
		return nil, aggregate.KettlebellSummary{}, ErrWorkoutValidation
	}

	entry := &domain.KettlebellEntry{
		Date:         date,
		Weight:       input.Weight,
		Series:       series,
		Reps:         input.Reps,
		SingleHanded: input.SingleHanded,
	}
	if _, err := s.kettlebellRepo.Create(ctx, entry); err != nil {
		return nil, aggregate.KettlebellSummary{}, err
	}

	summary, err := s.kettlebellDaySummary(ctx, date)
	if err != nil {
		return nil, aggregate.KettlebellSummary{}, err
	}
	return entry, summary, nil
}

func (s *workoutService) UpdateKettlebell(ctx context.Context, id int64, patch KettlebellPatch) (*domain.KettlebellEntry, aggregate.KettlebellSummary, error) {
	existing, err := s.kettlebellRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, aggregate.KettlebellSummary{}, ErrEntryNotFound
		}
		return nil, aggregate.KettlebellSummary{}, err
	}

	if patch.Date != nil {
		if !dates.Valid(*patch.Date) {
			return nil, aggregate.KettlebellSummary{}, ErrWorkoutValidation
		}
		existing.Date = *patch.Date
	}
	if patch.Weight != nil {
		if *patch.Weight <= 0 || math.IsNaN(*patch.Weight) || math.IsInf(*patch.Weight, 0) {
			return nil, aggregate.KettlebellSummary{}, ErrWorkoutValidation
		}
		existing.Weight = *patch.Weight
	}
	if patch.Series != nil {
		if *patch.Series <= 0 {
			return nil, aggregate.KettlebellSummary{}, ErrWorkoutValidation
		}
		existing.Series = *patch.Series
	}
	if patch.Reps != nil {
		if *patch.Reps <= 0 {
			return nil, aggregate.KettlebellSummary{}, ErrWorkoutValidation
		}
		existing.Reps = *patch.Reps
	}
	if patch.SingleHanded != nil {
		existing.SingleHanded = *patch.SingleHanded
	}

	if err := s.kettlebellRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, aggregate.KettlebellSummary{}, ErrEntryNotFound
		}
		return nil, aggregate.KettlebellSummary{}, err
	}

	summary, err := s.kettlebellDaySummary(ctx, existing.Date)
	if err != nil {
		return nil, aggregate.KettlebellSummary{}, err
	}
	return existing, summary, nil
}

func (s *workoutService) DeleteKettlebell(ctx context.Context, id int64) error {
	if err := s.kettlebellRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}

// --- Push-ups ---

func (s *workoutService) pushUpsForDay(ctx context.Context, date string) ([]domain.PushUpEntry, error) {
	entries, err := s.pushUpRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	scoped := entries[:0]
	for _, e := range entries {
		if e.Date == date {
			scoped = append(scoped, e)
		}
	}
	sort.Slice(scoped, func(i, j int) bool {
		return scoped[i].CreatedAt.After(scoped[j].CreatedAt)
	})
	return scoped, nil
}

func (s *workoutService) pushUpDaySummary(ctx context.Context, date string) (aggregate.PushUpSummary, error) {
	entries, err := s.pushUpsForDay(ctx, date)
	if err != nil {
		return aggregate.PushUpSummary{}, err
	}
	return aggregate.SummarizePushUpDay(entries), nil
}

func (s *workoutService) ListPushUpDay(ctx context.Context, date string) ([]domain.PushUpEntry, aggregate.PushUpSummary, error) {
	entries, err := s.pushUpsForDay(ctx, date)
	if err != nil {
		return nil, aggregate.PushUpSummary{}, err
	}
	return entries, aggregate.SummarizePushUpDay(entries), nil
}

func (s *workoutService) CreatePushUp(ctx context.Context, input PushUpInput) (*domain.PushUpEntry, aggregate.PushUpSummary, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, aggregate.PushUpSummary{}, err
	}
	series, err := resolveSeries(input.Series)
	if err != nil {
		return nil, aggregate.PushUpSummary{}, err
	}
	if input.Reps <= 0 {
		return nil, aggregate.PushUpSummary{}, ErrWorkoutValidation
	}

	entry := &domain.PushUpEntry{
		Date:   date,
		Series: series,
		Reps:   input.Reps,
	}
	if _, err := s.pushUpRepo.Create(ctx, entry); err != nil {
		return nil, aggregate.PushUpSummary{}, err
	}

	summary, err := s.pushUpDaySummary(ctx, date)
	if err != nil {
		return nil, aggregate.PushUpSummary{}, err
	}
	return entry, summary, nil
}

func (s *workoutService) UpdatePushUp(ctx context.Context, id int64, patch PushUpPatch) (*domain.PushUpEntry, aggregate.PushUpSummary, error) {
	existing, err := s.pushUpRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, aggregate.PushUpSummary{}, ErrEntryNotFound
		}
		return nil, aggregate.PushUpSummary{}, err
	}

	if patch.Date != nil {
		if !dates.Valid(*patch.Date) {
			return nil, aggregate.PushUpSummary{}, ErrWorkoutValidation
		}
		existing.Date = *patch.Date
	}
	if patch.Series != nil {
		if *patch.Series <= 0 {
			return nil, aggregate.PushUpSummary{}, ErrWorkoutValidation
		}
		existing.Series = *patch.Series
	}
	if patch.Reps != nil {
		if *patch.Reps <= 0 {
			return nil, aggregate.PushUpSummary{}, ErrWorkoutValidation
		}
		existing.Reps = *patch.Reps
	}

	if err := s.pushUpRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, aggregate.PushUpSummary{}, ErrEntryNotFound
		}
		return nil, aggregate.PushUpSummary{}, err
	}

	summary, err := s.pushUpDaySummary(ctx, existing.Date)
	if err != nil {
		return nil, aggregate.PushUpSummary{}, err
	}
	return existing, summary, nil
}

func (s *workoutService) DeletePushUp(ctx context.Context, id int64) error {
	if err := s.pushUpRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}

// --- Daily timers ---

func (s *workoutService) GetDaily(ctx context.Context, date string) (*domain.DailyWorkoutRecord, error) {
	record, err := s.dailyRepo.Get(ctx, date)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	// Absent timer state reads as zeros without materializing a record.
	return &domain.DailyWorkoutRecord{Date: date}, nil
}

func (s *workoutService) UpdateDaily(ctx context.Context, date string, patch TimerPatch) (*domain.DailyWorkoutRecord, error) {
	record, err := s.GetDaily(ctx, date)
	if err != nil {
		return nil, err
	}

	if patch.KettlebellTime != nil {
		if *patch.KettlebellTime < 0 {
			return nil, ErrWorkoutValidation
		}
		record.KettlebellTime = *patch.KettlebellTime
	}
	if patch.PushupTime != nil {
		if *patch.PushupTime < 0 {
			return nil, ErrWorkoutValidation
		}
		record.PushupTime = *patch.PushupTime
	}

	if err := s.dailyRepo.Put(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

// --- Cross-day views ---

func (s *workoutService) History(ctx context.Context) (*WorkoutHistory, error) {
	kettlebell, err := s.kettlebellRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pushUps, err := s.pushUpRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &WorkoutHistory{
		Kettlebell: aggregate.KettlebellHistory(kettlebell),
		PushUps:    aggregate.PushUpHistory(pushUps),
	}, nil
}

func (s *workoutService) Summary(ctx context.Context, date string) (*aggregate.WorkoutSummary, error) {
	kettlebell, err := s.kettlebellDaySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	pushUps, err := s.pushUpDaySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	daily, err := s.GetDaily(ctx, date)
	if err != nil {
		return nil, err
	}
	return &aggregate.WorkoutSummary{
		Kettlebell:     kettlebell,
		PushUps:        pushUps,
		KettlebellTime: daily.KettlebellTime,
		PushupTime:     daily.PushupTime,
	}, nil
}
