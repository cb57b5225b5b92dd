package pages

import (
	"time"

	"github.com/2beens/fitstreak/internal/views"
	"github.com/2beens/fitstreak/internal/workouts"
)

// buildCalendar returns the last days calendar days ending with today, oldest first.
func buildCalendar(now time.Time, history []workouts.Workout, days int) []views.CalendarDay {
	byDay := make(map[string][]string)
	done := make(map[string]bool)
	for _, w := range history {
		key := w.DateActual.Format(time.DateOnly)
		done[key] = true
		for _, category := range w.Categories {
			if !contains(byDay[key], category) {
				byDay[key] = append(byDay[key], category)
			}
		}
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	calendar := make([]views.CalendarDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := date.Format(time.DateOnly)
		calendar = append(calendar, views.CalendarDay{
			Date:       date,
			Categories: byDay[key],
			Done:       done[key],
			Today:      i == 0,
		})
	}
	return calendar
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
