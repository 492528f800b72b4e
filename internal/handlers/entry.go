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

// EntryHandler coordinates completion entry HTTP handlers.
type EntryHandler struct {
	entryService *services.EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// ListEntries returns a habit's completion entries within an inclusive date
// range, ordered by date ascending.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ListEntriesRequest struct {
		HabitID   string `form:"habit_id" binding:"required,uuid"`
		StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
		EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
	}

	var req ListEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.BadRequest(c, "Invalid query parameters")
		return
	}

	entries, err := h.entryService.ListEntries(userID, req.HabitID, req.StartDate, req.EndDate)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": dto.ToHabitEntryDTOs(entries),
	})
}

// SetCompletion marks a habit completed or not completed on a calendar date.
// The operation is idempotent in both directions.
func (h *EntryHandler) SetCompletion(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SetCompletionRequest struct {
		HabitID   string `json:"habit_id" binding:"required,uuid"`
		Date      string `json:"date" binding:"required,datetime=2006-01-02"`
		Completed *bool  `json:"completed" binding:"required"`
	}

	var req SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.entryService.SetCompletion(userID, req.HabitID, req.Date, *req.Completed); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func respondEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
