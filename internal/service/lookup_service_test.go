package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vbodnar/lifetrack-app/internal/provider/openfoodfacts"
	"vbodnar/lifetrack-app/internal/service"
)

type stubSearcher struct {
	results []openfoodfacts.FoodLookup
	err     error
}

func (s *stubSearcher) Search(_ context.Context, _ string) ([]openfoodfacts.FoodLookup, error) {
	return s.results, s.err
}

func TestLookupUnavailableWithoutProvider(t *testing.T) {
	lookup := service.NewLookupService(nil)
	_, err := lookup.Search(context.Background(), "rice")
	assert.ErrorIs(t, err, service.ErrLookupUnavailable)
}

func TestLookupRequiresQuery(t *testing.T) {
	lookup := service.NewLookupService(&stubSearcher{})
	_, err := lookup.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrFoodValidation)
}

func TestLookupPassesThroughResults(t *testing.T) {
	want := []openfoodfacts.FoodLookup{{Name: "Basmati Rice", Kcal: 130}}
	lookup := service.NewLookupService(&stubSearcher{results: want})

	got, err := lookup.Search(context.Background(), "rice")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLookupWrapsProviderErrors(t *testing.T) {
	upstream := errors.New("connection refused")
	lookup := service.NewLookupService(&stubSearcher{err: upstream})

	_, err := lookup.Search(context.Background(), "rice")
	assert.ErrorIs(t, err, upstream)
}
