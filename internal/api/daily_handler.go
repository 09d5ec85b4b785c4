package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vbodnar/lifetrack-app/internal/service"
)

// DailyHandler holds the fasting/water service dependency.
type DailyHandler struct {
	dailyService service.DailyService
}

// NewDailyHandler creates a new DailyHandler.
func NewDailyHandler(dailyService service.DailyService) *DailyHandler {
	return &DailyHandler{dailyService: dailyService}
}

// --- DTOs for API ---

type UpdateDailyRequest struct {
	FastingDone *bool `json:"fasting_done"`
	EatingStart *int  `json:"eating_start"`
	EatingEnd   *int  `json:"eating_end"`
	WaterML     *int  `json:"water_ml"`
}

type AddWaterRequest struct {
	Amount *int `json:"amount" binding:"required"`
}

// --- Handler Methods ---

func (h *DailyHandler) GetDaily(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	record, err := h.dailyService.Get(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load daily record.")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *DailyHandler) UpdateDaily(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	var req UpdateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.dailyService.Update(c.Request.Context(), date, service.DailyPatch{
		FastingDone: req.FastingDone,
		EatingStart: req.EatingStart,
		EatingEnd:   req.EatingEnd,
		WaterML:     req.WaterML,
	})
	if err != nil {
		if errors.Is(err, service.ErrDailyValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update daily record.")
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// AddWater applies a signed water delta; the stored value never drops
// below zero.
func (h *DailyHandler) AddWater(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	var req AddWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.dailyService.AddWater(c.Request.Context(), date, *req.Amount)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update water.")
		return
	}
	c.JSON(http.StatusOK, record)
}
