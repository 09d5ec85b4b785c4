package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vbodnar/lifetrack-app/internal/provider/openfoodfacts"
)

// --- Error Definitions ---
var (
	ErrLookupUnavailable = errors.New("food lookup provider is not configured")
)

// FoodSearcher is the external-provider contract. The core never
// depends on it internally; a failed call affects only that request.
type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]openfoodfacts.FoodLookup, error)
}

// LookupService exposes capability-gated external food lookup.
type LookupService interface {
	Search(ctx context.Context, query string) ([]openfoodfacts.FoodLookup, error)
}

type lookupService struct {
	searcher FoodSearcher
}

// NewLookupService creates a lookup service. A nil searcher means the
// capability is not configured; every call then reports
// ErrLookupUnavailable.
func NewLookupService(searcher FoodSearcher) LookupService {
	return &lookupService{searcher: searcher}
}

func (s *lookupService) Search(ctx context.Context, query string) ([]openfoodfacts.FoodLookup, error) {
	if s.searcher == nil {
		return nil, ErrLookupUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrFoodValidation
	}
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("food lookup: %w", err)
	}
	return results, nil
}
