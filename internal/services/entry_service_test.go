package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbellard/habit-tracker-api/internal/models"
	"github.com/mbellard/habit-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func newEntryService(db *gorm.DB) *EntryService {
	return NewEntryService(repository.NewHabitRepository(db), repository.NewEntryRepository(db))
}

func entryCount(db *gorm.DB, habitID, date string) int64 {
	var count int64
	db.Model(&models.HabitEntry{}).
		Where("habit_id = ? AND date = ?", habitID, date).
		Count(&count)
	return count
}

func TestEntryService_SetCompletion_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newEntryService(db)
	user := createTestUser(t, db, "toggle@example.com")

	habit, err := newHabitService(db).CreateHabit(CreateHabitInput{
		UserID: user.ID,
		Title:  "Journal",
		Color:  "#FF8800",
	})
	require.NoError(t, err)

	const date = "2024-06-05"

	// Marking completed twice leaves exactly one entry.
	require.NoError(t, svc.SetCompletion(user.ID, habit.ID, date, true))
	require.NoError(t, svc.SetCompletion(user.ID, habit.ID, date, true))
	assert.EqualValues(t, 1, entryCount(db, habit.ID, date))

	// Unmarking removes it; unmarking again is a no-op.
	require.NoError(t, svc.SetCompletion(user.ID, habit.ID, date, false))
	assert.EqualValues(t, 0, entryCount(db, habit.ID, date))
	require.NoError(t, svc.SetCompletion(user.ID, habit.ID, date, false))
	assert.EqualValues(t, 0, entryCount(db, habit.ID, date))
}

func TestEntryService_SetCompletion_UnknownHabit(t *testing.T) {
	db := newTestDB(t)
	svc := newEntryService(db)
	user := createTestUser(t, db, "unknown@example.com")

	err := svc.SetCompletion(user.ID, "11111111-2222-3333-4444-555555555555", "2024-06-05", true)
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestEntryService_SetCompletion_ForeignHabit(t *testing.T) {
	db := newTestDB(t)
	svc := newEntryService(db)
	owner := createTestUser(t, db, "entry-owner@example.com")
	other := createTestUser(t, db, "entry-other@example.com")

	habit, err := newHabitService(db).CreateHabit(CreateHabitInput{
		UserID: owner.ID,
		Title:  "Swim",
		Color:  "#00AAFF",
	})
	require.NoError(t, err)

	err = svc.SetCompletion(other.ID, habit.ID, "2024-06-05", true)
	assert.ErrorIs(t, err, ErrHabitNotFound)
	assert.EqualValues(t, 0, entryCount(db, habit.ID, "2024-06-05"))
}

func TestEntryService_ListEntries_RangeAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newEntryService(db)
	user := createTestUser(t, db, "range@example.com")

	habit, err := newHabitService(db).CreateHabit(CreateHabitInput{
		UserID: user.ID,
		Title:  "Cook",
		Color:  "#AA00AA",
	})
	require.NoError(t, err)

	for _, date := range []string{"2024-06-09", "2024-06-03", "2024-06-05", "2024-05-20"} {
		require.NoError(t, svc.SetCompletion(user.ID, habit.ID, date, true))
	}

	entries, err := svc.ListEntries(user.ID, habit.ID, "2024-06-03", "2024-06-09")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Range is inclusive on both ends, ordered by date ascending.
	assert.Equal(t, "2024-06-03", entries[0].Date)
	assert.Equal(t, "2024-06-05", entries[1].Date)
	assert.Equal(t, "2024-06-09", entries[2].Date)
}
