package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
	"workout-tracker/internal/service"
)

// WorkoutHandler holds the session tracker service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

type CreateWorkoutRequest struct {
	PlanID        *int64     `json:"workout_plan_id" binding:"omitempty,gt=0"`
	Name          string     `json:"name" binding:"required,min=1,max=100"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         string     `json:"notes"`
}

// UpdateWorkoutRequest is a partial update: omitted fields keep their
// stored value.
type UpdateWorkoutRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=100"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Status        *string    `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Notes         *string    `json:"notes"`
}

type WorkoutLogRequest struct {
	ExerciseID int64    `json:"exercise_id" binding:"required,gt=0"`
	Sets       int      `json:"sets" binding:"required,min=1,max=20"`
	Reps       int      `json:"reps" binding:"required,min=1,max=100"`
	Weight     *float64 `json:"weight" binding:"omitempty,gt=0"`
	RestTime   *int     `json:"rest_time" binding:"omitempty,min=0,max=600"`
	Notes      string   `json:"notes"`
}

// --- Handler Methods ---

// ListWorkouts godoc
// @Summary List the caller's workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} gin.H "Workouts"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}

	filter := repository.WorkoutFilter{
		Status: c.Query("status"),
		Limit:  queryInt(c, "limit", 20),
		Offset: queryInt(c, "offset", 0),
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), userID, filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// GetWorkout godoc
// @Summary Get one workout with its logs
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} gin.H "Workout"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

// CreateWorkout godoc
// @Summary Create a workout session
// @Description Optionally derives the session from one of the caller's plans.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body CreateWorkoutRequest true "Workout details"
// @Success 201 {object} gin.H "Workout created"
// @Failure 400 {object} gin.H "Invalid input or plan reference"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, service.CreateWorkoutInput{
		PlanID:        req.PlanID,
		Name:          req.Name,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout created successfully",
		"workout": workout,
	})
}

// UpdateWorkout godoc
// @Summary Update a workout session
// @Description Partial update; omitted fields retain their stored values.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Param workout body UpdateWorkoutRequest true "Fields to update"
// @Success 200 {object} gin.H "Workout updated"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := domain.WorkoutUpdate{
		Name:          req.Name,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := domain.WorkoutStatus(*req.Status)
		update.Status = &status
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), workoutID, userID, update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workout updated successfully",
		"workout": workout,
	})
}

// DeleteWorkout godoc
// @Summary Delete a workout session
// @Description Unconditional hard delete; the session's logs cascade with it.
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} gin.H "Workout deleted"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), workoutID, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

// AddLog godoc
// @Summary Append a log entry to a workout
// @Description Appends; logging the same exercise again creates another row.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Param log body WorkoutLogRequest true "Log entry"
// @Success 201 {object} gin.H "Log added"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id}/logs [post]
func (h *WorkoutHandler) AddLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var req WorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	log, err := h.workoutService.AddLog(c.Request.Context(), workoutID, userID, service.LogInput{
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RestTime:   req.RestTime,
		Notes:      req.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout log added successfully",
		"log":     log,
	})
}

func (h *WorkoutHandler) respondError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		abortValidation(c, vErr)
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, service.ErrInvalidPlanRef):
		abortWithError(c, http.StatusBadRequest, "Invalid workout plan")
	case errors.Is(err, service.ErrInvalidExerciseRef):
		abortWithError(c, http.StatusBadRequest, "Invalid exercise reference")
	default:
		abortInternal(c, err)
	}
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
