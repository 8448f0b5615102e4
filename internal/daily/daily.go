// Package daily picks the solution for a calendar day.
package daily

import "time"

// msPerDay is the length of one day in milliseconds.
const msPerDay = 86_400_000

// Epoch is day zero of the daily rotation. Changing it shifts every future
// daily word, so it is versioned with the code rather than configured.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// midnight maps the calendar date of t, as seen in t's own location, to UTC
// midnight. Two instants on the same calendar day therefore map to the same value.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey returns YYYY-MM-DD for the calendar date of t.
func DateKey(t time.Time) string {
	return midnight(t).Format("2006-01-02")
}

// DaysSince returns whole days elapsed from Epoch to the calendar date of
// today, floor-divided so dates before the epoch are negative.
func DaysSince(today time.Time) int {
	ms := midnight(today).Sub(Epoch).Milliseconds()
	days := ms / msPerDay
	if ms%msPerDay != 0 && ms < 0 {
		days--
	}
	return int(days)
}

// Index returns the solution index for today in a list of n solutions.
// The result is always in [0, n); it is 0 when n <= 0.
func Index(today time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	i := DaysSince(today) % n
	if i < 0 {
		i += n
	}
	return i
}

// Word returns the daily solution for today, or "" if solutions is empty.
func Word(today time.Time, solutions []string) string {
	if len(solutions) == 0 {
		return ""
	}
	return solutions[Index(today, len(solutions))]
}
