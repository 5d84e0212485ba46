package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/api"
	"workout-tracker/internal/config"
	"workout-tracker/internal/repository/postgres"
	"workout-tracker/internal/service"
)

// @title Workout Tracker API
// @version 1.0
// @description API for workout plans, sessions, logs and progress reports.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("starting workout tracker server ...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret is required (set JWT_SECRET)")
	}
	log.Info("configuration loaded")

	// --- Database Connection ---
	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}
	log.Info("database schema ready")

	// --- Initialize Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	exerciseRepo := postgres.NewExerciseRepository(pool)
	planRepo := postgres.NewWorkoutPlanRepository(pool)
	workoutRepo := postgres.NewWorkoutRepository(pool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo)
	planService := service.NewPlanService(planRepo)
	workoutService := service.NewWorkoutService(workoutRepo, planRepo)
	progressService := service.NewProgressService(workoutRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	api.SetupRoutes(
		router, cfg.JWT.Secret,
		authService, exerciseService, planService, workoutService, progressService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server ...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}
