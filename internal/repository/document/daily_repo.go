package document

import (
	"context"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
	"vbodnar/lifetrack-app/internal/store"
)

// documentDailyFoodRepository stores one DailyFoodRecord per calendar
// day. The collection is keyed by date, so the envelope's id counter
// goes unused.
type documentDailyFoodRepository struct {
	coll *collection[domain.DailyFoodRecord]
}

// NewDailyFoodRepository creates the fasting/water record repository.
func NewDailyFoodRepository(docs store.DocumentStore) repository.DailyFoodRepository {
	return &documentDailyFoodRepository{
		coll: newCollection[domain.DailyFoodRecord](docs, store.CollectionFoodDaily),
	}
}

func (r *documentDailyFoodRepository) Get(ctx context.Context, date string) (*domain.DailyFoodRecord, error) {
	items, err := r.coll.view(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Date == date {
			record := items[i]
			return &record, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *documentDailyFoodRepository) Put(ctx context.Context, record domain.DailyFoodRecord) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.DailyFoodRecord]) error {
		for i := range env.Items {
			if env.Items[i].Date == record.Date {
				env.Items[i] = record
				return nil
			}
		}
		env.Items = append(env.Items, record)
		return nil
	})
}

// documentDailyWorkoutRepository stores one DailyWorkoutRecord per day,
// same shape as the food daily collection.
type documentDailyWorkoutRepository struct {
	coll *collection[domain.DailyWorkoutRecord]
}

// NewDailyWorkoutRepository creates the per-day workout timer repository.
func NewDailyWorkoutRepository(docs store.DocumentStore) repository.DailyWorkoutRepository {
	return &documentDailyWorkoutRepository{
		coll: newCollection[domain.DailyWorkoutRecord](docs, store.CollectionWorkoutDaily),
	}
}

func (r *documentDailyWorkoutRepository) Get(ctx context.Context, date string) (*domain.DailyWorkoutRecord, error) {
	items, err := r.coll.view(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Date == date {
			record := items[i]
			return &record, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *documentDailyWorkoutRepository) Put(ctx context.Context, record domain.DailyWorkoutRecord) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.DailyWorkoutRecord]) error {
		for i := range env.Items {
			if env.Items[i].Date == record.Date {
				env.Items[i] = record
				return nil
			}
		}
		env.Items = append(env.Items, record)
		return nil
	})
}
