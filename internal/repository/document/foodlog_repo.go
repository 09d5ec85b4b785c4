package document

import (
	"context"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
	"vbodnar/lifetrack-app/internal/store"
)

// documentFoodLogRepository implements repository.FoodLogRepository.
type documentFoodLogRepository struct {
	coll *collection[domain.FoodLogEntry]
}

// NewFoodLogRepository creates a food log repository backed by the
// document store.
func NewFoodLogRepository(docs store.DocumentStore) repository.FoodLogRepository {
	return &documentFoodLogRepository{
		coll: newCollection[domain.FoodLogEntry](docs, store.CollectionFoodLogs),
	}
}

func (r *documentFoodLogRepository) List(ctx context.Context) ([]domain.FoodLogEntry, error) {
	return r.coll.view(ctx)
}

func (r *documentFoodLogRepository) GetByID(ctx context.Context, id int64) (*domain.FoodLogEntry, error) {
	items, err := r.coll.view(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			entry := items[i]
			return &entry, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *documentFoodLogRepository) Create(ctx context.Context, entry *domain.FoodLogEntry) (int64, error) {
	err := r.coll.mutate(ctx, func(env *envelope[domain.FoodLogEntry]) error {
		entry.ID = env.NextID
		env.NextID++
		env.Items = append(env.Items, *entry)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (r *documentFoodLogRepository) Update(ctx context.Context, entry *domain.FoodLogEntry) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.FoodLogEntry]) error {
		for i := range env.Items {
			if env.Items[i].ID == entry.ID {
				env.Items[i] = *entry
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *documentFoodLogRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.FoodLogEntry]) error {
		for i := range env.Items {
			if env.Items[i].ID == id {
				env.Items = append(env.Items[:i], env.Items[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *documentFoodLogRepository) DeleteByFoodID(ctx context.Context, foodID int64) (int, error) {
	removed := 0
	err := r.coll.mutate(ctx, func(env *envelope[domain.FoodLogEntry]) error {
		kept := env.Items[:0]
		for _, entry := range env.Items {
			if entry.FoodID == foodID {
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		env.Items = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
