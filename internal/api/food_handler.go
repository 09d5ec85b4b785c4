package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vbodnar/lifetrack-app/internal/service"
)

// FoodHandler holds the catalog and lookup service dependencies.
type FoodHandler struct {
	foodService   service.FoodService
	lookupService service.LookupService
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(foodService service.FoodService, lookupService service.LookupService) *FoodHandler {
	return &FoodHandler{foodService: foodService, lookupService: lookupService}
}

// --- DTOs for API ---

// FoodRequest defines the expected JSON for creating or updating a
// catalog item. Absent numeric fields degrade to 0; total_grams to null.
type FoodRequest struct {
	Name       string   `json:"name" binding:"required"`
	Kcal       *float64 `json:"kcal"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fats       *float64 `json:"fats"`
	Sodium     *float64 `json:"sodium"`
	Caffeine   *float64 `json:"caffeine"`
	TotalGrams *float64 `json:"total_grams"`
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func (r FoodRequest) toInput() service.FoodInput {
	return service.FoodInput{
		Name:       r.Name,
		Kcal:       orZero(r.Kcal),
		Protein:    orZero(r.Protein),
		Carbs:      orZero(r.Carbs),
		Fats:       orZero(r.Fats),
		Sodium:     orZero(r.Sodium),
		Caffeine:   orZero(r.Caffeine),
		TotalGrams: r.TotalGrams,
	}
}

// --- Handler Methods ---

// GetFoods returns the catalog, optionally filtered by ?search=.
func (h *FoodHandler) GetFoods(c *gin.Context) {
	foods, err := h.foodService.ListFoods(c.Request.Context(), c.Query("search"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list foods.")
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	food, err := h.foodService.CreateFood(c.Request.Context(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFoodValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateFoodName):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create food.")
		}
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	food, err := h.foodService.UpdateFood(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFoodValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateFoodName):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrFoodNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update food.")
		}
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.foodService.DeleteFood(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete food.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// LookupFood proxies the external provider. The capability is optional;
// an unconfigured provider reports 503 rather than failing the server.
func (h *FoodHandler) LookupFood(c *gin.Context) {
	results, err := h.lookupService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLookupUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, service.ErrFoodValidation):
			abortWithError(c, http.StatusBadRequest, "Missing query parameter.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Food lookup failed: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, results)
}
