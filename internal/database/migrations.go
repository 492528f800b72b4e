package database

import (
	"fmt"

	"github.com/mbellard/habit-tracker-api/internal/models"
	"gorm.io/gorm"
)

// EnsureIndexes creates the secondary indexes the query paths rely on, for
// databases migrated before the index tags were added. The composite primary
// key on habit_entries (habit_id, date) is the uniqueness constraint
// idempotent completion inserts depend on and needs no separate index.
func EnsureIndexes(db *gorm.DB) error {
	indexes := []struct {
		model any
		name  string
	}{
		// Habit lookups are always scoped to the owning user; lists are
		// sorted by creation time.
		{&models.Habit{}, "idx_habits_user_id"},
		{&models.Habit{}, "idx_habits_created_at"},

		// Entry range scans filter on the date column.
		{&models.HabitEntry{}, "idx_habit_entries_date"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
