// Package openfoodfacts is a thin client for the Open Food Facts search
// API, used to prefill catalog entries. It is an optional collaborator:
// failures surface as a single upstream error and never block ledger
// operations.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

const searchPageSize = 5

// FoodLookup is one candidate nutrition record, normalized to the
// catalog's per-serving field set. Sodium is in milligrams.
type FoodLookup struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Kcal     float64 `json:"kcal"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Sodium   float64 `json:"sodium"`
	Caffeine float64 `json:"caffeine"`
}

// Client calls the Open Food Facts search endpoint. A zero value uses
// the public API with a default timeout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// Nutriments mixes numeric values with string unit keys such as
// "energy_unit": "kcal", so it has to decode as map[string]any.
type offProduct struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

// Search queries the provider for products matching the given terms and
// returns up to five normalized candidates.
func (c *Client) Search(ctx context.Context, query string) ([]FoodLookup, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", fmt.Sprintf("%d", searchPageSize))

	endpoint := fmt.Sprintf("%s/cgi/search.pl?%s", base, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "lifetrack-app/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts response: %w", err)
	}

	results := make([]FoodLookup, 0, len(parsed.Products))
	for _, product := range parsed.Products {
		name := strings.TrimSpace(product.ProductName)
		if name == "" {
			continue
		}
		results = append(results, FoodLookup{
			Name:     name,
			Brand:    strings.TrimSpace(product.Brands),
			Kcal:     nutrientValue(product.Nutriments, "energy-kcal"),
			Protein:  nutrientValue(product.Nutriments, "proteins"),
			Carbs:    nutrientValue(product.Nutriments, "carbohydrates"),
			Fats:     nutrientValue(product.Nutriments, "fat"),
			Sodium:   nutrientValue(product.Nutriments, "sodium") * 1000,
			Caffeine: nutrientValue(product.Nutriments, "caffeine") * 1000,
		})
	}
	return results, nil
}

func nutrientValue(n map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(n[key]); ok {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
