package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Habit struct {
	ID           string     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID       string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title        string     `gorm:"type:varchar(100);not null" json:"title"`
	Color        string     `gorm:"type:varchar(7);not null" json:"color"`
	WeeklyTarget int        `gorm:"not null;default:1" json:"weekly_target"`
	ArchivedAt   *time.Time `json:"archived_at"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	User    User         `gorm:"foreignKey:UserID" json:"-"`
	Entries []HabitEntry `gorm:"foreignKey:HabitID" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
