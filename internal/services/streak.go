package services

import (
	"time"

	"github.com/mbellard/habit-tracker-api/internal/models"
)

// CalculateStreak returns the number of consecutive calendar weeks, ending
// with the week before the current one, in which the habit's completions met
// or exceeded weeklyTarget.
//
// Weeks run Monday through Sunday. The current week is excluded: a streak
// cannot break mid-week before the week has finished. All week arithmetic is
// done in UTC, the process-wide reference timezone; completion dates are
// compared as plain YYYY-MM-DD strings and never shifted.
//
// The scan walks one week back at a time and stops at the first week below
// target. Any weeklyTarget of at least one guarantees termination, since a
// week with no completions always fails.
func CalculateStreak(weeklyTarget int, dates []string, now time.Time) int {
	if weeklyTarget < 1 {
		return 0
	}

	completed := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		completed[d] = struct{}{}
	}

	// Evaluation begins at the most recently completed full week.
	weekStart := StartOfWeek(now).AddDate(0, 0, -7)

	streak := 0
	for {
		count := 0
		for day := 0; day < 7; day++ {
			date := weekStart.AddDate(0, 0, day).Format(models.DateLayout)
			if _, ok := completed[date]; ok {
				count++
			}
		}

		if count < weeklyTarget {
			return streak
		}

		streak++
		weekStart = weekStart.AddDate(0, 0, -7)
	}
}

// StartOfWeek returns midnight UTC on the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -offset)
}
