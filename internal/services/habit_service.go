package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mbellard/habit-tracker-api/internal/constants"
	"github.com/mbellard/habit-tracker-api/internal/models"
	"github.com/mbellard/habit-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound       = errors.New("habit not found")
	ErrTitleEmpty          = errors.New("title cannot be empty")
	ErrTitleTooLong        = errors.New("title is too long")
	ErrInvalidColor        = errors.New("color must be in #RRGGBB format")
	ErrInvalidWeeklyTarget = errors.New("weekly target must be between 1 and 7")
	ErrInvalidArchivedAt   = errors.New("archived_at must be an RFC 3339 timestamp")
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// HabitService handles habit business logic
type HabitService struct {
	habitRepo repository.HabitRepository
	entryRepo repository.EntryRepository
}

// NewHabitService creates a new HabitService
func NewHabitService(habitRepo repository.HabitRepository, entryRepo repository.EntryRepository) *HabitService {
	return &HabitService{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
	}
}

// CreateHabitInput represents input for creating a habit
type CreateHabitInput struct {
	UserID       string
	Title        string
	Color        string
	WeeklyTarget int
}

// UpdateHabitInput represents a partial habit update. Nil fields are left
// untouched; ClearArchivedAt unarchives regardless of ArchivedAt.
type UpdateHabitInput struct {
	Title           *string
	Color           *string
	WeeklyTarget    *int
	ArchivedAt      *string
	ClearArchivedAt bool
}

// CreateHabit validates field constraints and creates a habit owned by the
// given user. An omitted weekly target defaults to one completion per week.
func (s *HabitService) CreateHabit(input CreateHabitInput) (*models.Habit, error) {
	if input.WeeklyTarget == 0 {
		input.WeeklyTarget = constants.DefaultWeeklyTarget
	}

	if err := validateHabitFields(input.Title, input.Color, input.WeeklyTarget); err != nil {
		return nil, err
	}

	habit := &models.Habit{
		UserID:       input.UserID,
		Title:        input.Title,
		Color:        input.Color,
		WeeklyTarget: input.WeeklyTarget,
	}

	if err := s.habitRepo.Create(habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

// GetHabit returns a habit if it is owned by the user
func (s *HabitService) GetHabit(userID, habitID string) (*models.Habit, error) {
	habit, err := s.habitRepo.FindByID(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	return habit, nil
}

// ListHabits returns the user's habits, most recently created first
func (s *HabitService) ListHabits(userID string) ([]models.Habit, error) {
	habits, err := s.habitRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return habits, nil
}

// UpdateHabit applies only the supplied fields to a habit owned by the user.
// An explicit null archived_at clears the archival mark.
func (s *HabitService) UpdateHabit(userID, habitID string, input UpdateHabitInput) (*models.Habit, error) {
	habit, err := s.habitRepo.FindByID(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		if len(*input.Title) > constants.MaxTitleLength {
			return nil, ErrTitleTooLong
		}
		habit.Title = *input.Title
	}
	if input.Color != nil {
		if !colorPattern.MatchString(*input.Color) {
			return nil, ErrInvalidColor
		}
		habit.Color = *input.Color
	}
	if input.WeeklyTarget != nil {
		if *input.WeeklyTarget < constants.MinWeeklyTarget || *input.WeeklyTarget > constants.MaxWeeklyTarget {
			return nil, ErrInvalidWeeklyTarget
		}
		habit.WeeklyTarget = *input.WeeklyTarget
	}
	if input.ClearArchivedAt {
		habit.ArchivedAt = nil
	} else if input.ArchivedAt != nil {
		parsed, err := time.Parse(time.RFC3339, *input.ArchivedAt)
		if err != nil {
			return nil, ErrInvalidArchivedAt
		}
		habit.ArchivedAt = &parsed
	}

	if err := s.habitRepo.Update(habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return habit, nil
}

// DeleteHabit removes a habit owned by the user along with all of its
// completion entries.
func (s *HabitService) DeleteHabit(userID, habitID string) error {
	habit, err := s.habitRepo.FindByID(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHabitNotFound
		}
		return fmt.Errorf("failed to find habit: %w", err)
	}

	if err := s.habitRepo.Delete(habit.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	return nil
}

// GetStreak computes the habit's current weekly streak. The completion set
// is fetched once; the calculation itself is pure and holds no transaction
// open.
func (s *HabitService) GetStreak(userID, habitID string) (int, error) {
	habit, err := s.habitRepo.FindByID(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrHabitNotFound
		}
		return 0, fmt.Errorf("failed to find habit: %w", err)
	}

	dates, err := s.entryRepo.ListDatesByHabit(habit.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list completion dates: %w", err)
	}

	return CalculateStreak(habit.WeeklyTarget, dates, time.Now().UTC()), nil
}

// validateHabitFields re-checks the data-model invariants. Request binding
// validates upstream; this keeps invalid values out of the store when the
// service is called from elsewhere.
func validateHabitFields(title, color string, weeklyTarget int) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleEmpty
	}
	if len(title) > constants.MaxTitleLength {
		return ErrTitleTooLong
	}
	if !colorPattern.MatchString(color) {
		return ErrInvalidColor
	}
	if weeklyTarget < constants.MinWeeklyTarget || weeklyTarget > constants.MaxWeeklyTarget {
		return ErrInvalidWeeklyTarget
	}
	return nil
}
