package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParsesProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "basmati rice", r.URL.Query().Get("search_terms"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{
					"product_name": "Basmati Rice",
					"brands": "Tilda",
					"nutriments": {
						"energy-kcal_serving": 130,
						"energy_unit": "kcal",
						"proteins_serving": 2.7,
						"carbohydrates_serving": 28.2,
						"carbohydrates_unit": "g",
						"fat_serving": 0.3,
						"sodium_serving": 0.005,
						"sodium_unit": "g"
					}
				},
				{"product_name": "", "nutriments": {}}
			]
		}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	results, err := client.Search(context.Background(), "basmati rice")
	require.NoError(t, err)

	// Unnamed products are dropped.
	require.Len(t, results, 1)
	assert.Equal(t, "Basmati Rice", results[0].Name)
	assert.Equal(t, "Tilda", results[0].Brand)
	assert.InDelta(t, 130, results[0].Kcal, 1e-9)
	assert.InDelta(t, 2.7, results[0].Protein, 1e-9)
	assert.InDelta(t, 5, results[0].Sodium, 1e-9) // grams to milligrams
}

func TestSearchMixedNutrimentValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{
					"product_name": "Cold Brew",
					"nutriments": {
						"energy-kcal_100g": "5",
						"energy_unit": "kcal",
						"caffeine_serving": 0.095,
						"caffeine_unit": "g",
						"proteins_serving": null
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	results, err := client.Search(context.Background(), "cold brew")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// String numerics parse, _100g backfills a missing _serving key,
	// and unit keys never shadow the values.
	assert.InDelta(t, 5, results[0].Kcal, 1e-9)
	assert.InDelta(t, 95, results[0].Caffeine, 1e-9)
	assert.Zero(t, results[0].Protein)
}

func TestSearchUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	_, err := client.Search(context.Background(), "rice")
	assert.Error(t, err)
}

func TestSearchMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	_, err := client.Search(context.Background(), "rice")
	assert.Error(t, err)
}
