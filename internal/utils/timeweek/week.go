// Package timeweek is the single source of truth for week bucketing. Time
// entries and week locks must both key weeks through WeekStart; computing the
// boundary anywhere else risks an entry and its lock disagreeing about which
// week they belong to.
package timeweek

import "time"

// WeekStart returns the Monday beginning the ISO week that contains t,
// truncated to midnight UTC. Sunday maps back six days to the preceding
// Monday, never forward.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	t = t.AddDate(0, 0, -(weekday - 1))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekEnd returns the Sunday ending the week that begins at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// IsWeekStart reports whether t is a Monday at midnight UTC, i.e. a valid
// week-lock key.
func IsWeekStart(t time.Time) bool {
	return t.Equal(WeekStart(t))
}

// Truncate normalizes an entry date to midnight UTC so range comparisons
// against week boundaries behave regardless of the client's time component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
