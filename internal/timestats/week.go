// Package timestats buckets session durations into calendar views: weekly
// progress, per-day hours, per-hour minutes and a day x hour heat map.
//
// Every function takes the reference instant or location explicitly; nothing
// here reads the wall clock.
package timestats

import (
	"math"
	"time"
)

const (
	DaysPerWeek  = 7
	HoursPerDay  = 24
	HeatMapCells = DaysPerWeek * HoursPerDay
)

// MondayIndex converts Go's Sunday-based weekday to Monday=0 .. Sunday=6.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// StartOfDay is midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekWindow returns the Monday-start week containing now. Both bounds are
// inclusive: end is the last nanosecond of Sunday.
func WeekWindow(now time.Time) (start, end time.Time) {
	day := StartOfDay(now)
	start = day.AddDate(0, 0, -MondayIndex(day.Weekday()))
	end = start.AddDate(0, 0, DaysPerWeek).Add(-time.Nanosecond)
	return start, end
}

func withinInclusive(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func withinHalfOpen(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
