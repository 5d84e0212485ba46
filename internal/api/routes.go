package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/service"
)

// SetupRoutes wires all handlers onto the engine. Everything except
// register/login and the health check sits behind the JWT middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	planService service.PlanService,
	workoutService service.WorkoutService,
	progressService service.ProgressService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	planHandler := NewPlanHandler(planService)
	workoutHandler := NewWorkoutHandler(workoutService)
	progressHandler := NewProgressHandler(progressService)

	router.Use(RequestIDMiddleware())
	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/profile", authMiddleware, authHandler.Profile)
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware)
		{
			// --- Exercise Catalog (read-only) ---
			exerciseGroup := protected.Group("/exercises")
			{
				exerciseGroup.GET("", exerciseHandler.ListExercises)
				exerciseGroup.GET("/categories/list", exerciseHandler.ListCategories)
				exerciseGroup.GET("/muscle-groups/list", exerciseHandler.ListMuscleGroups)
				exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			}

			// --- Workout Plans ---
			planGroup := protected.Group("/workout-plans")
			{
				planGroup.GET("", planHandler.ListPlans)
				planGroup.POST("", planHandler.CreatePlan)
				planGroup.GET("/:id", planHandler.GetPlan)
				planGroup.PUT("/:id", planHandler.UpdatePlan)
				planGroup.DELETE("/:id", planHandler.DeletePlan)
			}

			// --- Workouts and Logs ---
			workoutGroup := protected.Group("/workouts")
			{
				workoutGroup.GET("", workoutHandler.ListWorkouts)
				workoutGroup.POST("", workoutHandler.CreateWorkout)
				// Registered before /:id so "reports" is not parsed as an id.
				workoutGroup.GET("/reports/progress", progressHandler.GetProgress)
				workoutGroup.GET("/:id", workoutHandler.GetWorkout)
				workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
				workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
				workoutGroup.POST("/:id/logs", workoutHandler.AddLog)
			}
		}
	}
}
