package repository

import (
	"github.com/mbellard/habit-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error
}

// HabitRepository defines the interface for habit data access. Every lookup
// is scoped to the owning user so cross-user access surfaces as a missing
// record.
type HabitRepository interface {
	// Create creates a new habit
	Create(habit *models.Habit) error

	// FindByID finds a habit by ID, scoped to the owning user
	FindByID(userID, habitID string) (*models.Habit, error)

	// ListByUser lists a user's habits, most recently created first
	ListByUser(userID string) ([]models.Habit, error)

	// Update updates a habit
	Update(habit *models.Habit) error

	// Delete hard-deletes a habit and all of its entries atomically
	Delete(habitID string) error
}

// EntryRepository defines the interface for completion entry data access
type EntryRepository interface {
	// Insert records a completion for (habitID, date). Inserting an entry
	// that already exists is a silent no-op.
	Insert(habitID, date string) error

	// Delete removes the completion for (habitID, date) if present
	Delete(habitID, date string) error

	// ListByHabit lists entries in the inclusive civil-date range
	// [startDate, endDate], ordered by date ascending
	ListByHabit(habitID, startDate, endDate string) ([]models.HabitEntry, error)

	// ListDatesByHabit returns every completion date recorded for a habit
	ListDatesByHabit(habitID string) ([]string, error)
}
