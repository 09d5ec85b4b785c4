// Package document implements the repository interfaces on top of the
// whole-document store. Every collection is a {items, nextId} envelope;
// each operation is a full load-mutate-save cycle serialized by a
// per-collection mutex, so two in-process writers never lose an update.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"vbodnar/lifetrack-app/internal/store"
)

// envelope is the persisted document shape shared by all collections.
// NextID is the monotonic counter for the next assigned id; collections
// keyed by date rather than id persist it untouched at 1.
type envelope[T any] struct {
	Items  []T   `json:"items"`
	NextID int64 `json:"nextId"`
}

type collection[T any] struct {
	mu    sync.Mutex
	store store.DocumentStore
	name  string
}

func newCollection[T any](docs store.DocumentStore, name string) *collection[T] {
	return &collection[T]{store: docs, name: name}
}

// load reads the backing document. A collection that was never
// initialized yields the defined empty shape: no items, counter at 1.
// Callers must hold the mutex when the result feeds a save.
func (c *collection[T]) load(ctx context.Context) (envelope[T], error) {
	data, err := c.store.Load(ctx, c.name)
	if errors.Is(err, store.ErrNotExist) {
		return envelope[T]{Items: []T{}, NextID: 1}, nil
	}
	if err != nil {
		return envelope[T]{}, err
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope[T]{}, fmt.Errorf("decoding %s: %w", c.name, err)
	}
	if env.Items == nil {
		env.Items = []T{}
	}
	if env.NextID < 1 {
		env.NextID = 1
	}
	return env, nil
}

// view returns a snapshot of the items for read-only use.
func (c *collection[T]) view(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	env, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// mutate runs one serialized load-mutate-save cycle. If fn returns an
// error nothing is written, so failed validation never leaves a partial
// write behind.
func (c *collection[T]) mutate(ctx context.Context, fn func(env *envelope[T]) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	env, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&env); err != nil {
		return err
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.name, err)
	}
	return c.store.Save(ctx, c.name, data)
}
