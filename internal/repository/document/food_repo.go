package document

import (
	"context"
	"time"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
	"vbodnar/lifetrack-app/internal/store"
)

// documentFoodRepository implements repository.FoodRepository over the
// food catalog document.
type documentFoodRepository struct {
	coll *collection[domain.FoodItem]
}

// NewFoodRepository creates a food catalog repository backed by the
// document store.
func NewFoodRepository(docs store.DocumentStore) repository.FoodRepository {
	return &documentFoodRepository{
		coll: newCollection[domain.FoodItem](docs, store.CollectionFoods),
	}
}

func (r *documentFoodRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	return r.coll.view(ctx)
}

func (r *documentFoodRepository) GetByID(ctx context.Context, id int64) (*domain.FoodItem, error) {
	items, err := r.coll.view(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			food := items[i]
			return &food, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *documentFoodRepository) FindByName(ctx context.Context, name string) (*domain.FoodItem, error) {
	items, err := r.coll.view(ctx)
	if err != nil {
		return nil, err
	}
	normalized := domain.NormalizeFoodName(name)
	for i := range items {
		if domain.NormalizeFoodName(items[i].Name) == normalized {
			food := items[i]
			return &food, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *documentFoodRepository) Create(ctx context.Context, food *domain.FoodItem) (int64, error) {
	err := r.coll.mutate(ctx, func(env *envelope[domain.FoodItem]) error {
		food.ID = env.NextID
		food.CreatedAt = time.Now()
		env.NextID++
		env.Items = append(env.Items, *food)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return food.ID, nil
}

func (r *documentFoodRepository) Update(ctx context.Context, food *domain.FoodItem) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.FoodItem]) error {
		for i := range env.Items {
			if env.Items[i].ID == food.ID {
				env.Items[i] = *food
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *documentFoodRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.FoodItem]) error {
		for i := range env.Items {
			if env.Items[i].ID == id {
				env.Items = append(env.Items[:i], env.Items[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
