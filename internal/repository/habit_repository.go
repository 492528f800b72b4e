package repository

import (
	"github.com/mbellard/habit-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormHabitRepository is a GORM implementation of HabitRepository
type GormHabitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new HabitRepository
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &GormHabitRepository{db: db}
}

// Create creates a new habit
func (r *GormHabitRepository) Create(habit *models.Habit) error {
	return r.db.Create(habit).Error
}

// FindByID finds a habit by ID, scoped to the owning user. A habit owned by
// another user is indistinguishable from a missing one.
func (r *GormHabitRepository) FindByID(userID, habitID string) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// ListByUser lists a user's habits, most recently created first
func (r *GormHabitRepository) ListByUser(userID string) ([]models.Habit, error) {
	var habits []models.Habit
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// Update updates a habit
func (r *GormHabitRepository) Update(habit *models.Habit) error {
	return r.db.Save(habit).Error
}

// Delete hard-deletes a habit and its entries in a single transaction.
// Entries go first so no orphan entry is ever visible; the transaction makes
// the cascade all-or-nothing.
func (r *GormHabitRepository) Delete(habitID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitEntry{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", habitID).Delete(&models.Habit{}).Error
	})
}
