package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vbodnar/lifetrack-app/internal/service"
)

// SetupRoutes registers the REST surface consumed by the SPA.
func SetupRoutes(
	router *gin.Engine,
	foodService service.FoodService,
	logService service.LogService,
	dailyService service.DailyService,
	workoutService service.WorkoutService,
	lookupService service.LookupService,
) {
	foodHandler := NewFoodHandler(foodService, lookupService)
	logHandler := NewLogHandler(logService)
	dailyHandler := NewDailyHandler(dailyService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	foodGroup := router.Group("/foods")
	{
		foodGroup.GET("", foodHandler.GetFoods)
		foodGroup.POST("", foodHandler.CreateFood)
		foodGroup.GET("/lookup", foodHandler.LookupFood)
		foodGroup.PUT("/:id", foodHandler.UpdateFood)
		foodGroup.DELETE("/:id", foodHandler.DeleteFood)
	}

	logGroup := router.Group("/logs")
	{
		logGroup.GET("", logHandler.GetLogs)
		logGroup.GET("/summary", logHandler.GetSummary)
		logGroup.POST("", logHandler.CreateLog)
		logGroup.PUT("/:id", logHandler.UpdateLog)
		logGroup.DELETE("/:id", logHandler.DeleteLog)
	}

	dailyGroup := router.Group("/daily")
	{
		dailyGroup.GET("", dailyHandler.GetDaily)
		dailyGroup.PUT("", dailyHandler.UpdateDaily)
		dailyGroup.POST("/water", dailyHandler.AddWater)
	}

	workoutGroup := router.Group("/workouts")
	{
		workoutGroup.GET("/kettlebell", workoutHandler.GetKettlebellDay)
		workoutGroup.POST("/kettlebell", workoutHandler.CreateKettlebell)
		workoutGroup.PUT("/kettlebell/:id", workoutHandler.UpdateKettlebell)
		workoutGroup.DELETE("/kettlebell/:id", workoutHandler.DeleteKettlebell)

		workoutGroup.GET("/pushups", workoutHandler.GetPushUpDay)
		workoutGroup.POST("/pushups", workoutHandler.CreatePushUp)
		workoutGroup.PUT("/pushups/:id", workoutHandler.UpdatePushUp)
		workoutGroup.DELETE("/pushups/:id", workoutHandler.DeletePushUp)

		workoutGroup.GET("/daily", workoutHandler.GetDaily)
		workoutGroup.PUT("/daily", workoutHandler.UpdateDaily)

		workoutGroup.GET("/history", workoutHandler.GetHistory)
		workoutGroup.GET("/summary", workoutHandler.GetSummary)
	}
}
