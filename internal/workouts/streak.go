package workouts

import "time"

const day = 24 * time.Hour

// ComputeStreak counts consecutive days backwards from the most recent date.
// Dates must be distinct calendar days sorted most recent first, the time
// part is ignored. The most recent day does not have to be today.
func ComputeStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	prev := civilDay(dates[0])
	for _, d := range dates[1:] {
		current := civilDay(d)
		gap := int(prev.Sub(current) / day)
		if gap != 1 {
			// >= 2 breaks the streak, <= 0 means unsorted or duplicated input
			break
		}
		streak++
		prev = current
	}
	return streak
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
