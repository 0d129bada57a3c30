// Package streak computes the current consecutive-day tracking streak from
// the mood entry history.
package streak

import (
	"sort"
	"time"

	"github.com/moodmitra/moodmitra-backend/internal/models"
)

// day truncates t to a UTC calendar date. Both the streak and the analytics
// packages compare days in UTC so a single entry never lands on two
// different calendar days depending on where it is inspected.
func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}

// Current returns the number of most-recent consecutive calendar days with at
// least one mood entry, counting backward from the newest entry and
// tolerating gaps of at most one day. Multiple entries on the same calendar
// day count once. Entry order in the slice is irrelevant; chronology is
// re-derived from timestamps. Returns 0 for an empty history.
func Current(moods []models.MoodEntry, now time.Time) int {
	if len(moods) == 0 {
		return 0
	}

	sorted := make([]models.MoodEntry, len(moods))
	copy(sorted, moods)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	streak := 0
	current := day(now)
	counted := false
	for _, m := range sorted {
		entryDay := day(m.CreatedAt)
		if counted && entryDay.Equal(current) {
			// Same calendar day as the last counted entry.
			continue
		}
		if daysBetween(current, entryDay) <= streak+1 {
			streak++
			current = entryDay
			counted = true
		} else {
			break
		}
	}
	return streak
}
