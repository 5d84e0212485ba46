package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/service"
)

// ProgressHandler holds the progress aggregator service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress godoc
// @Summary Get the caller's progress report
// @Description Aggregates completed workouts and per-exercise weight progression over a trailing window.
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days (default 30)"
// @Success 200 {object} domain.ProgressReport "Progress report"
// @Router /workouts/reports/progress [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authentication context")
		return
	}

	days := queryInt(c, "days", service.DefaultProgressWindowDays)

	report, err := h.progressService.GetProgress(c.Request.Context(), userID, days)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
