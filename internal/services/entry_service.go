package services

import (
	"errors"
	"fmt"

	"github.com/mbellard/habit-tracker-api/internal/models"
	"github.com/mbellard/habit-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// EntryService handles completion entry business logic
type EntryService struct {
	habitRepo repository.HabitRepository
	entryRepo repository.EntryRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(habitRepo repository.HabitRepository, entryRepo repository.EntryRepository) *EntryService {
	return &EntryService{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
	}
}

// SetCompletion marks a habit completed or not completed on a calendar date.
// Marking completed creates the entry unless it already exists; marking not
// completed deletes it if present. Both directions are idempotent: repeating
// the call leaves the same final state.
func (s *EntryService) SetCompletion(userID, habitID, date string, completed bool) error {
	habit, err := s.habitRepo.FindByID(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHabitNotFound
		}
		return fmt.Errorf("failed to find habit: %w", err)
	}

	if completed {
		if err := s.entryRepo.Insert(habit.ID, date); err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}
		return nil
	}

	if err := s.entryRepo.Delete(habit.ID, date); err != nil {
		return fmt.Errorf("failed to remove completion: %w", err)
	}
	return nil
}

// ListEntries returns a habit's entries in the inclusive civil-date range
// [startDate, endDate], ordered by date ascending.
func (s *EntryService) ListEntries(userID, habitID, startDate, endDate string) ([]models.HabitEntry, error) {
	habit, err := s.habitRepo.FindByID(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	entries, err := s.entryRepo.ListByHabit(habit.ID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}
