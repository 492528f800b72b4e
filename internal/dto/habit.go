package dto

import (
	"time"

	"github.com/mbellard/habit-tracker-api/internal/models"
)

// HabitDTO represents a habit in API responses
type HabitDTO struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Color        string     `json:"color"`
	WeeklyTarget int        `json:"weekly_target"`
	ArchivedAt   *time.Time `json:"archived_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HabitEntryDTO represents a completion entry in API responses
type HabitEntryDTO struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

// StreakDTO represents a habit's current streak in API responses
type StreakDTO struct {
	HabitID string `json:"habit_id"`
	Streak  int    `json:"streak"`
}

// ToHabitDTO converts a Habit model to HabitDTO
func ToHabitDTO(habit models.Habit) HabitDTO {
	return HabitDTO{
		ID:           habit.ID,
		UserID:       habit.UserID,
		Title:        habit.Title,
		Color:        habit.Color,
		WeeklyTarget: habit.WeeklyTarget,
		ArchivedAt:   habit.ArchivedAt,
		CreatedAt:    habit.CreatedAt,
		UpdatedAt:    habit.UpdatedAt,
	}
}

// ToHabitDTOs converts a slice of Habit models
func ToHabitDTOs(habits []models.Habit) []HabitDTO {
	dtos := make([]HabitDTO, len(habits))
	for i, habit := range habits {
		dtos[i] = ToHabitDTO(habit)
	}
	return dtos
}

// ToHabitEntryDTOs converts a slice of HabitEntry models
func ToHabitEntryDTOs(entries []models.HabitEntry) []HabitEntryDTO {
	dtos := make([]HabitEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = HabitEntryDTO{
			HabitID: entry.HabitID,
			Date:    entry.Date,
		}
	}
	return dtos
}
