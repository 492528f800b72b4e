package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mbellard/habit-tracker-api/internal/dto"
	apierrors "github.com/mbellard/habit-tracker-api/internal/errors"
	"github.com/mbellard/habit-tracker-api/internal/middleware"
	"github.com/mbellard/habit-tracker-api/internal/services"
)

// HabitHandler coordinates habit-related HTTP handlers.
type HabitHandler struct {
	habitService *services.HabitService
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService *services.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

// CreateHabit creates a new habit for the authenticated user.
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateHabitRequest struct {
		Title        string `json:"title" binding:"required,min=1,max=100"`
		Color        string `json:"color" binding:"required,len=7,hexcolor"`
		WeeklyTarget int    `json:"weekly_target" binding:"omitempty,min=1,max=7"`
	}

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	habit, err := h.habitService.CreateHabit(services.CreateHabitInput{
		UserID:       userID,
		Title:        req.Title,
		Color:        req.Color,
		WeeklyTarget: req.WeeklyTarget,
	})
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHabitDTO(*habit))
}

// ListHabits returns the authenticated user's habits, newest first.
func (h *HabitHandler) ListHabits(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	habits, err := h.habitService.ListHabits(userID)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"habits": dto.ToHabitDTOs(habits),
	})
}

// GetHabit returns a single habit owned by the authenticated user.
func (h *HabitHandler) GetHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	habit, err := h.habitService.GetHabit(userID, c.Param("id"))
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHabitDTO(*habit))
}

// UpdateHabit applies a partial update. Only fields present in the request
// body are touched; an explicit null archived_at clears the archival mark.
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	// Parse raw JSON to detect which fields were sent, including an
	// explicit null for archived_at.
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateHabitInput
	if title, ok := rawReq["title"].(string); ok {
		input.Title = &title
	}
	if color, ok := rawReq["color"].(string); ok {
		input.Color = &color
	}
	if target, ok := rawReq["weekly_target"].(float64); ok {
		weeklyTarget := int(target)
		input.WeeklyTarget = &weeklyTarget
	}
	if raw, ok := rawReq["archived_at"]; ok {
		if raw == nil {
			input.ClearArchivedAt = true
		} else if archivedAt, ok := raw.(string); ok {
			input.ArchivedAt = &archivedAt
		} else {
			apierrors.BadRequest(c, "archived_at must be a timestamp string or null")
			return
		}
	}

	habit, err := h.habitService.UpdateHabit(userID, c.Param("id"), input)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHabitDTO(*habit))
}

// DeleteHabit removes a habit and all of its completion entries.
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.habitService.DeleteHabit(userID, c.Param("id")); err != nil {
		respondHabitError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStreak returns the habit's current consecutive-week streak.
func (h *HabitHandler) GetStreak(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	habitID := c.Param("id")
	streak, err := h.habitService.GetStreak(userID, habitID)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StreakDTO{
		HabitID: habitID,
		Streak:  streak,
	})
}

func respondHabitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrTitleTooLong),
		errors.Is(err, services.ErrInvalidColor),
		errors.Is(err, services.ErrInvalidWeeklyTarget),
		errors.Is(err, services.ErrInvalidArchivedAt):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
