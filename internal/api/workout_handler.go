package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vbodnar/lifetrack-app/internal/aggregate"
	"vbodnar/lifetrack-app/internal/domain"
	"vbodnar/lifetrack-app/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API ---

type CreateKettlebellRequest struct {
	Date         string   `json:"date"`
	Weight       *float64 `json:"weight" binding:"required"`
	Series       *int     `json:"series"`
	Reps         *int     `json:"reps" binding:"required"`
	SingleHanded bool     `json:"singleHanded"`
}

type UpdateKettlebellRequest struct {
	Date         *string  `json:"date"`
	Weight       *float64 `json:"weight"`
	Series       *int     `json:"series"`
	Reps         *int     `json:"reps"`
	SingleHanded *bool    `json:"singleHanded"`
}

type CreatePushUpRequest struct {
	Date   string `json:"date"`
	Series *int   `json:"series"`
	Reps   *int   `json:"reps" binding:"required"`
}

type UpdatePushUpRequest struct {
	Date   *string `json:"date"`
	Series *int    `json:"series"`
	Reps   *int    `json:"reps"`
}

type UpdateTimersRequest struct {
	KettlebellTime *int `json:"kettlebell_time"`
	PushupTime     *int `json:"pushup_time"`
}

// KettlebellDayResponse is the day listing plus its rollup.
type KettlebellDayResponse struct {
	Entries []domain.KettlebellEntry    `json:"entries"`
	Summary aggregate.KettlebellSummary `json:"summary"`
}

type KettlebellEntryResponse struct {
	Entry   domain.KettlebellEntry      `json:"entry"`
	Summary aggregate.KettlebellSummary `json:"summary"`
}

type PushUpDayResponse struct {
	Entries []domain.PushUpEntry    `json:"entries"`
	Summary aggregate.PushUpSummary `json:"summary"`
}

type PushUpEntryResponse struct {
	Entry   domain.PushUpEntry      `json:"entry"`
	Summary aggregate.PushUpSummary `json:"summary"`
}

func (h *WorkoutHandler) abortWorkoutError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrWorkoutValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEntryNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// --- Kettlebell ---

func (h *WorkoutHandler) GetKettlebellDay(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	entries, summary, err := h.workoutService.ListKettlebellDay(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list kettlebell entries.")
		return
	}
	if entries == nil {
		entries = []domain.KettlebellEntry{}
	}
	c.JSON(http.StatusOK, KettlebellDayResponse{Entries: entries, Summary: summary})
}

func (h *WorkoutHandler) CreateKettlebell(c *gin.Context) {
	var req CreateKettlebellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, summary, err := h.workoutService.CreateKettlebell(c.Request.Context(), service.KettlebellInput{
		Date:         req.Date,
		Weight:       *req.Weight,
		Series:       req.Series,
		Reps:         *req.Reps,
		SingleHanded: req.SingleHanded,
	})
	if err != nil {
		h.abortWorkoutError(c, err, "Failed to create kettlebell entry.")
		return
	}
	c.JSON(http.StatusCreated, KettlebellEntryResponse{Entry: *entry, Summary: summary})
}

func (h *WorkoutHandler) UpdateKettlebell(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateKettlebellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, summary, err := h.workoutService.UpdateKettlebell(c.Request.Context(), id, service.KettlebellPatch{
		Date:         req.Date,
		Weight:       req.Weight,
		Series:       req.Series,
		Reps:         req.Reps,
		SingleHanded: req.SingleHanded,
	})
	if err != nil {
		h.abortWorkoutError(c, err, "Failed to update kettlebell entry.")
		return
	}
	c.JSON(http.StatusOK, KettlebellEntryResponse{Entry: *entry, Summary: summary})
}

func (h *WorkoutHandler) DeleteKettlebell(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.workoutService.DeleteKettlebell(c.Request.Context(), id); err != nil {
		h.abortWorkoutError(c, err, "Failed to delete kettlebell entry.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Push-ups ---

func (h *WorkoutHandler) GetPushUpDay(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	entries, summary, err := h.workoutService.ListPushUpDay(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list push-up entries.")
		return
	}
	if entries == nil {
		entries = []domain.PushUpEntry{}
	}
	c.JSON(http.StatusOK, PushUpDayResponse{Entries: entries, Summary: summary})
}

func (h *WorkoutHandler) CreatePushUp(c *gin.Context) {
	var req CreatePushUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, summary, err := h.workoutService.CreatePushUp(c.Request.Context(), service.PushUpInput{
		Date:   req.Date,
		Series: req.Series,
		Reps:   *req.Reps,
	})
	if err != nil {
		h.abortWorkoutError(c, err, "Failed to create push-up entry.")
		return
	}
	c.JSON(http.StatusCreated, PushUpEntryResponse{Entry: *entry, Summary: summary})
}

func (h *WorkoutHandler) UpdatePushUp(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdatePushUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, summary, err := h.workoutService.UpdatePushUp(c.Request.Context(), id, service.PushUpPatch{
		Date:   req.Date,
		Series: req.Series,
		Reps:   req.Reps,
	})
	if err != nil {
		h.abortWorkoutError(c, err, "Failed to update push-up entry.")
		return
	}
	c.JSON(http.StatusOK, PushUpEntryResponse{Entry: *entry, Summary: summary})
}

func (h *WorkoutHandler) DeletePushUp(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.workoutService.DeletePushUp(c.Request.Context(), id); err != nil {
		h.abortWorkoutError(c, err, "Failed to delete push-up entry.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Daily timers, history, combined summary ---

func (h *WorkoutHandler) GetDaily(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	record, err := h.workoutService.GetDaily(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout timers.")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *WorkoutHandler) UpdateDaily(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	var req UpdateTimersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.workoutService.UpdateDaily(c.Request.Context(), date, service.TimerPatch{
		KettlebellTime: req.KettlebellTime,
		PushupTime:     req.PushupTime,
	})
	if err != nil {
		h.abortWorkoutError(c, err, "Failed to update workout timers.")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *WorkoutHandler) GetHistory(c *gin.Context) {
	history, err := h.workoutService.History(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build workout history.")
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *WorkoutHandler) GetSummary(c *gin.Context) {
	date := dateQuery(c)
	if date == "" {
		return
	}
	summary, err := h.workoutService.Summary(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build workout summary.")
		return
	}
	c.JSON(http.StatusOK, summary)
}
