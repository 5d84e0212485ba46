package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/service"
)

// PlanHandler holds the plan composer service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Request Structs ---

// PlanExerciseRequest is one item of a plan write. Sets, reps and rest_time
// default to 3/10/60 when omitted, mirroring the form defaults in the
// client.
type PlanExerciseRequest struct {
	ExerciseID int64    `json:"exercise_id" binding:"required,gt=0"`
	Sets       *int     `json:"sets" binding:"omitempty,min=1,max=20"`
	Reps       *int     `json:"reps" binding:"omitempty,min=1,max=100"`
	Weight     *float64 `json:"weight" binding:"omitempty,gt=0"`
	RestTime   *int     `json:"rest_time" binding:"omitempty,min=0,max=600"`
	OrderIndex int      `json:"order_index" binding:"min=0"`
}

// WorkoutPlanRequest is the payload for both plan create and plan update;
// the exercise list replaces the stored one wholesale.
type WorkoutPlanRequest struct {
	Name        string                `json:"name" binding:"required,min=1,max=100"`
	Description string                `json:"description"`
	Exercises   []PlanExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

func (r WorkoutPlanRequest) toItems() []service.PlanExerciseItem {
	items := make([]service.PlanExerciseItem, len(r.Exercises))
	for i, ex := range r.Exercises {
		item := service.PlanExerciseItem{
			ExerciseID: ex.ExerciseID,
			Sets:       3,
			Reps:       10,
			RestTime:   60,
			Weight:     ex.Weight,
			OrderIndex: ex.OrderIndex,
		}
		if ex.Sets != nil {
			item.Sets = *ex.Sets
		}
		if ex.Reps != nil {
			item.Reps = *ex.Reps
		}
		if ex.RestTime != nil {
			item.RestTime = *ex.RestTime
		}
		items[i] = item
	}
	return items
}

// --- Handler Methods ---

// ListPlans godoc
// @Summary List the caller's workout plans
// @Tags WorkoutPlans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Workout plans"
// @Router /workout-plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}

	plans, err := h.planService.GetPlans(c.Request.Context(), userID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout_plans": plans})
}

// GetPlan godoc
// @Summary Get one workout plan with its ordered exercise list
// @Tags WorkoutPlans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} gin.H "Workout plan"
// @Failure 404 {object} gin.H "Workout plan not found"
// @Router /workout-plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	planID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), planID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout_plan": plan})
}

// CreatePlan godoc
// @Summary Create a workout plan
// @Description Creates the plan and its full exercise list in one transaction.
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body WorkoutPlanRequest true "Plan definition"
// @Success 201 {object} gin.H "Workout plan created"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workout-plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}

	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), userID, req.Name, req.Description, req.toItems())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Workout plan created successfully",
		"workout_plan": plan,
	})
}

// UpdatePlan godoc
// @Summary Update a workout plan
// @Description Replaces the plan's name, description and entire exercise list atomically.
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param plan body WorkoutPlanRequest true "Plan definition"
// @Success 200 {object} gin.H "Workout plan updated"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Workout plan not found"
// @Router /workout-plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	planID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), planID, userID, req.Name, req.Description, req.toItems())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Workout plan updated successfully",
		"workout_plan": plan,
	})
}

// DeletePlan godoc
// @Summary Delete a workout plan
// @Description Deletes the plan and its exercise list; sessions created from it survive with the reference cleared.
// @Tags WorkoutPlans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} gin.H "Workout plan deleted"
// @Failure 404 {object} gin.H "Workout plan not found"
// @Router /workout-plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}
	planID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), planID, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout plan deleted successfully"})
}

func (h *PlanHandler) respondError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		abortValidation(c, vErr)
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, "Workout plan not found")
	case errors.Is(err, service.ErrInvalidExerciseRef):
		abortWithError(c, http.StatusBadRequest, "Invalid exercise reference")
	default:
		abortInternal(c, err)
	}
}

// abortValidation surfaces every violated field in one response.
func abortValidation(c *gin.Context, vErr *service.ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   "Validation error",
		"details": vErr.Violations,
	})
}
