// Package store provides the whole-document persistence layer. Each
// collection is a single JSON document read and written in full; there
// are no partial writes and no append-only logs. Backends only move
// bytes, the typed {items, nextId} envelope lives in the repository
// layer.
package store

import "context"

// Collection names, grouped by domain directory.
const (
	CollectionFoods        = "food/foods"
	CollectionFoodLogs     = "food/logs"
	CollectionFoodDaily    = "food/daily"
	CollectionKettlebell   = "workouts/kettlebell"
	CollectionPushUps      = "workouts/pushups"
	CollectionWorkoutDaily = "workouts/daily"
)

// StoreError helps distinguish storage-layer errors.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrNotExist is returned by Load when a collection has never been
// initialized. Callers distinguish this from an empty collection.
var ErrNotExist = StoreError("collection does not exist")

// DocumentStore is the collaborator contract for whole-document
// persistence. Implementations must make Save all-or-nothing: a reader
// never observes a partially written document.
type DocumentStore interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}
