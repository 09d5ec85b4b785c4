package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"

	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrFoodNotFound      = errors.New("food not found")
	ErrDuplicateFoodName = errors.New("a food with this name already exists")
	ErrFoodValidation    = errors.New("food validation failed")
)

// FoodInput carries the writable catalog fields. Nutrients are per
// serving.
type FoodInput struct {
	Name       string
	Kcal       float64
	Protein    float64
	Carbs      float64
	Fats       float64
	Sodium     float64
	Caffeine   float64
	TotalGrams *float64
}

// FoodService manages the food catalog.
type FoodService interface {
	ListFoods(ctx context.Context, search string) ([]domain.FoodItem, error)
	GetFood(ctx context.Context, id int64) (*domain.FoodItem, error)
	CreateFood(ctx context.Context, input FoodInput) (*domain.FoodItem, error)
	UpdateFood(ctx context.Context, id int64, input FoodInput) (*domain.FoodItem, error)
	DeleteFood(ctx context.Context, id int64) error
}

type foodService struct {
	foodRepo repository.FoodRepository
	logRepo  repository.FoodLogRepository
}

// NewFoodService creates a new instance of foodService. The log
// repository is needed for the cascade delete.
func NewFoodService(foodRepo repository.FoodRepository, logRepo repository.FoodLogRepository) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		logRepo:  logRepo,
	}
}

// sanitizeAmount coerces a nutrient value at the write boundary:
// NaN, infinities and negatives all degrade to 0, never into storage.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// sanitizeTotalGrams keeps only a finite positive value, otherwise nil.
func sanitizeTotalGrams(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return nil
	}
	grams := *v
	return &grams
}

func (s *foodService) ListFoods(ctx context.Context, search string) ([]domain.FoodItem, error) {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := domain.NormalizeFoodName(search)
		filtered := foods[:0]
		for _, food := range foods {
			if strings.Contains(domain.NormalizeFoodName(food.Name), needle) {
				filtered = append(filtered, food)
			}
		}
		foods = filtered
	}

	// Catalog listings sort by name ascending, case-sensitive.
	sort.Slice(foods, func(i, j int) bool {
		return foods[i].Name < foods[j].Name
	})
	return foods, nil
}

func (s *foodService) GetFood(ctx context.Context, id int64) (*domain.FoodItem, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) CreateFood(ctx context.Context, input FoodInput) (*domain.FoodItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrFoodValidation
	}

	// Conflict check before any mutation is applied.
	if _, err := s.foodRepo.FindByName(ctx, name); err == nil {
		return nil, ErrDuplicateFoodName
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	food := &domain.FoodItem{
		Name:       name,
		Kcal:       sanitizeAmount(input.Kcal),
		Protein:    sanitizeAmount(input.Protein),
		Carbs:      sanitizeAmount(input.Carbs),
		Fats:       sanitizeAmount(input.Fats),
		Sodium:     sanitizeAmount(input.Sodium),
		Caffeine:   sanitizeAmount(input.Caffeine),
		TotalGrams: sanitizeTotalGrams(input.TotalGrams),
	}

	if _, err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id int64, input FoodInput) (*domain.FoodItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrFoodValidation
	}

	existing, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	// Renames must not collide with another catalog entry.
	if other, err := s.foodRepo.FindByName(ctx, name); err == nil {
		if other.ID != id {
			return nil, ErrDuplicateFoodName
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	existing.Name = name
	existing.Kcal = sanitizeAmount(input.Kcal)
	existing.Protein = sanitizeAmount(input.Protein)
	existing.Carbs = sanitizeAmount(input.Carbs)
	existing.Fats = sanitizeAmount(input.Fats)
	existing.Sodium = sanitizeAmount(input.Sodium)
	existing.Caffeine = sanitizeAmount(input.Caffeine)
	existing.TotalGrams = sanitizeTotalGrams(input.TotalGrams)

	if err := s.foodRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id int64) error {
	if err := s.foodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFoodNotFound
		}
		return err
	}

	// Cascade: remove every log entry referencing the deleted food.
	// Best-effort sequential across the two collections; there is no
	// cross-collection transaction.
	removed, err := s.logRepo.DeleteByFoodID(ctx, id)
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Printf("Cascade removed %d log entries for deleted food %d", removed, id)
	}
	return nil
}
