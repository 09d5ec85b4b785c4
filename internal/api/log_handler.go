package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vbodnar/lifetrack-app/internal/aggregate"
	"vbodnar/lifetrack-app/internal/service"
)

// LogHandler holds the food log service dependency.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// --- DTOs for API ---

type CreateLogRequest struct {
	FoodID   int64      `json:"food_id" binding:"required"`
	Servings *float64   `json:"servings"`
	LoggedAt *time.Time `json:"logged_at"`
}

type UpdateLogRequest struct {
	Servings *float64   `json:"servings"`
	LoggedAt *time.Time `json:"logged_at"`
}

// DailySummaryResponse applies the presentation rounding policy:
// calories and milligrams to whole units, grams to one decimal place.
type DailySummaryResponse struct {
	Date         string  `json:"date"`
	Kcal         float64 `json:"kcal"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	Sodium       float64 `json:"sodium"`
	Caffeine     float64 `json:"caffeine"`
	TotalEntries int     `json:"total_entries"`
}

// MapTotalsToResponse converts full-precision totals to the rounded DTO.
func MapTotalsToResponse(date string, t aggregate.NutrientTotals) DailySummaryResponse {
	return DailySummaryResponse{
		Date:         date,
		Kcal:         aggregate.RoundWhole(t.Kcal),
		Protein:      aggregate.RoundTenth(t.Protein),
		Carbs:        aggregate.RoundTenth(t.Carbs),
		Fats:         aggregate.RoundTenth(t.Fats),
		Sodium:       aggregate.RoundWhole(t.Sodium),
		Caffeine:     aggregate.RoundWhole(t.Caffeine),
		TotalEntries: t.TotalEntries,
	}
}

// --- Handler Methods ---

// GetLogs returns the joined log listing for a day, most recent first.
func (h *LogHandler) GetLogs(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	views, err := h.logService.ListByDate(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list logs.")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *LogHandler) GetSummary(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	totals, err := h.logService.Summary(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to summarize logs.")
		return
	}
	c.JSON(http.StatusOK, MapTotalsToResponse(date, totals))
}

func (h *LogHandler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	view, err := h.logService.CreateLog(c.Request.Context(), service.CreateLogInput{
		FoodID:   req.FoodID,
		Servings: req.Servings,
		LoggedAt: req.LoggedAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create log entry.")
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *LogHandler) UpdateLog(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	view, err := h.logService.UpdateLog(c.Request.Context(), id, service.LogPatch{
		Servings: req.Servings,
		LoggedAt: req.LoggedAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update log entry.")
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *LogHandler) DeleteLog(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.logService.DeleteLog(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete log entry.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
