package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saiyan/training-app/internal/metrics"
	"saiyan/training-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	metricsManager *metrics.Manager,
	metricsHandler http.Handler,
	trainingService service.TrainingService,
	dietService service.DietService,
	rivalService service.RivalService,
) {
	traineeHandler := NewTraineeHandler(trainingService, rivalService)
	workoutHandler := NewWorkoutHandler(trainingService, dietService)
	sessionHandler := NewSessionHandler(trainingService)

	router.Use(PanicRecovery(metricsManager), RequestLogger(), RequestMetrics(metricsManager))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(metricsHandler))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/me", traineeHandler.Me)
		apiV1.PUT("/me/profile", traineeHandler.UpdateProfile)
		apiV1.GET("/transformation", traineeHandler.Transformation)
		apiV1.GET("/rivals", traineeHandler.Rivals)
		apiV1.GET("/logs", traineeHandler.History)

		// --- Catalog ---
		apiV1.GET("/workouts", workoutHandler.ListWorkouts)
		apiV1.GET("/workouts/:id", workoutHandler.GetWorkout)
		apiV1.GET("/diet/recommended", workoutHandler.RecommendedMealPlan)

		// --- Live session ---
		sessionGroup := apiV1.Group("/session")
		{
			sessionGroup.POST("", sessionHandler.Start)
			sessionGroup.GET("", sessionHandler.Get)
			sessionGroup.DELETE("", sessionHandler.Abort)
			sessionGroup.POST("/complete-exercise", sessionHandler.CompleteExercise)
			sessionGroup.POST("/skip-rest", sessionHandler.SkipRest)
		}
	}
}
