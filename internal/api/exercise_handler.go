package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/service"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises godoc
// @Summary List catalog exercises
// @Description Lists exercises, optionally filtered by category and/or muscle group.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param muscle_group query string false "Muscle group filter"
// @Success 200 {object} gin.H "Exercises"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(
		c.Request.Context(),
		c.Query("category"),
		c.Query("muscle_group"),
	)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// GetExercise godoc
// @Summary Get one catalog exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} gin.H "Exercise"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		} else {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

// ListCategories godoc
// @Summary List distinct exercise categories
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Categories"
// @Router /exercises/categories/list [get]
func (h *ExerciseHandler) ListCategories(c *gin.Context) {
	categories, err := h.exerciseService.ListCategories(c.Request.Context())
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListMuscleGroups godoc
// @Summary List distinct muscle groups
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Muscle groups"
// @Router /exercises/muscle-groups/list [get]
func (h *ExerciseHandler) ListMuscleGroups(c *gin.Context) {
	muscleGroups, err := h.exerciseService.ListMuscleGroups(c.Request.Context())
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"muscle_groups": muscleGroups})
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}
