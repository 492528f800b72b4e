package repository

import (
	"github.com/mbellard/habit-tracker-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEntryRepository is a GORM implementation of EntryRepository
type GormEntryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &GormEntryRepository{db: db}
}

// Insert records a completion for (habitID, date). The ON CONFLICT DO
// NOTHING clause rides on the composite primary key, so a duplicate insert
// (including one racing a concurrent request) is a silent no-op.
func (r *GormEntryRepository) Insert(habitID, date string) error {
	entry := models.HabitEntry{
		HabitID: habitID,
		Date:    date,
	}

	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
}

// Delete removes the completion for (habitID, date). Deleting an absent
// entry is a no-op, not an error.
func (r *GormEntryRepository) Delete(habitID, date string) error {
	return r.db.Where("habit_id = ? AND date = ?", habitID, date).
		Delete(&models.HabitEntry{}).Error
}

// ListByHabit lists entries in the inclusive range [startDate, endDate],
// ordered by date ascending. ISO dates compare correctly as strings.
func (r *GormEntryRepository) ListByHabit(habitID, startDate, endDate string) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	if err := r.db.Where("habit_id = ? AND date >= ? AND date <= ?", habitID, startDate, endDate).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListDatesByHabit returns every completion date recorded for a habit
func (r *GormEntryRepository) ListDatesByHabit(habitID string) ([]string, error) {
	var dates []string
	if err := r.db.Model(&models.HabitEntry{}).
		Where("habit_id = ?", habitID).
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}
