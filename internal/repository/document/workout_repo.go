package document

import (
	"context"
	"time"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
	"vbodnar/lifetrack-app/internal/store"
)

// documentKettlebellRepository implements repository.KettlebellRepository.
type documentKettlebellRepository struct {
	coll *collection[domain.KettlebellEntry]
}

// NewKettlebellRepository creates a kettlebell entry repository backed
// by the document store.
func NewKettlebellRepository(docs store.DocumentStore) repository.KettlebellRepository {
	return &documentKettlebellRepository{
		coll: newCollection[domain.KettlebellEntry](docs, store.CollectionKettlebell),
	}
}

func (r *documentKettlebellRepository) List(ctx context.Context) ([]domain.KettlebellEntry, error) {
	return r.coll.view(ctx)
}

func (r *documentKettlebellRepository) GetByID(ctx context.Context, id int64) (*domain.KettlebellEntry, error) {
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

func (r *documentKettlebellRepository) Create(ctx context.Context, entry *domain.KettlebellEntry) (int64, error) {
	err := r.coll.mutate(ctx, func(env *envelope[domain.KettlebellEntry]) error {
		entry.ID = env.NextID
		entry.CreatedAt = time.Now()
		env.NextID++
		env.Items = append(env.Items, *entry)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (r *documentKettlebellRepository) Update(ctx context.Context, entry *domain.KettlebellEntry) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.KettlebellEntry]) error {
		for i := range env.Items {
			if env.Items[i].ID == entry.ID {
				env.Items[i] = *entry
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *documentKettlebellRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.KettlebellEntry]) error {
		for i := range env.Items {
			if env.Items[i].ID == id {
				env.Items = append(env.Items[:i], env.Items[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

// documentPushUpRepository implements repository.PushUpRepository.
type documentPushUpRepository struct {
	coll *collection[domain.PushUpEntry]
}

// NewPushUpRepository creates a push-up entry repository backed by the
// document store.
func NewPushUpRepository(docs store.DocumentStore) repository.PushUpRepository {
	return &documentPushUpRepository{
		coll: newCollection[domain.PushUpEntry](docs, store.CollectionPushUps),
	}
}

func (r *documentPushUpRepository) List(ctx context.Context) ([]domain.PushUpEntry, error) {
	return r.coll.view(ctx)
}

func (r *documentPushUpRepository) GetByID(ctx context.Context, id int64) (*domain.PushUpEntry, error) {
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

func (r *documentPushUpRepository) Create(ctx context.Context, entry *domain.PushUpEntry) (int64, error) {
	err := r.coll.mutate(ctx, func(env *envelope[domain.PushUpEntry]) error {
		entry.ID = env.NextID
		entry.CreatedAt = time.Now()
		env.NextID++
		env.Items = append(env.Items, *entry)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (r *documentPushUpRepository) Update(ctx context.Context, entry *domain.PushUpEntry) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.PushUpEntry]) error {
		for i := range env.Items {
			if env.Items[i].ID == entry.ID {
				env.Items[i] = *entry
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *documentPushUpRepository) Delete(ctx context.Context, id int64) error {
	return r.coll.mutate(ctx, func(env *envelope[domain.PushUpEntry]) error {
		for i := range env.Items {
			if env.Items[i].ID == id {
				env.Items = append(env.Items[:i], env.Items[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
