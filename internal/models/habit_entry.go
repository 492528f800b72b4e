package models

import "time"

// DateLayout is the civil-date format used for completion dates. Dates are
// stored verbatim as YYYY-MM-DD strings; no timezone conversion is ever
// applied to them.
const DateLayout = "2006-01-02"

// HabitEntry marks a habit as completed on a calendar date. The composite
// primary key (habit_id, date) is the entry's whole identity: existence means
// completed, absence means not completed.
type HabitEntry struct {
	HabitID   string    `gorm:"type:varchar(36);primarykey" json:"habit_id"`
	Date      string    `gorm:"type:varchar(10);primarykey;index" json:"date"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Habit Habit `gorm:"foreignKey:HabitID" json:"-"`
}
