package engine

import (
	"time"

	"staff-planner/internal/models"
)

// Day normalizes a timestamp to midnight UTC so that calendar arithmetic is
// insensitive to the zone the date was parsed in.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay compares two timestamps by calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EnumerateDays returns the inclusive day-by-day sequence of [start, end].
func EnumerateDays(start, end time.Time) ([]time.Time, error) {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	days := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// IsWeekend reports Saturday/Sunday under a Monday-first week
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday checks whether any holiday record matches the day and applies to
// the region: exact date match plus region match (case-insensitive) or
// national scope.
func IsHoliday(d time.Time, region string, holidays []models.Holiday) bool {
	for i := range holidays {
		if holidays[i].MatchesDay(d) && holidays[i].AppliesTo(region) {
			return true
		}
	}
	return false
}

// WeekWindow is a Monday-aligned week clipped to the bounds of the overall
// range. NominalStart is always a Monday; Start/End may be partial at the
// edges of the range.
type WeekWindow struct {
	NominalStart time.Time
	Start        time.Time
	End          time.Time
}

// mondayOf returns the Monday of the week containing d
func mondayOf(d time.Time) time.Time {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started six days earlier
	}
	return d.AddDate(0, 0, -offset)
}

// WeeksInRange partitions [start, end] into Monday-aligned windows. The first
// and last window may be partial.
func WeeksInRange(start, end time.Time) ([]WeekWindow, error) {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	weeks := []WeekWindow{}
	for monday := mondayOf(start); !monday.After(end); monday = monday.AddDate(0, 0, 7) {
		w := WeekWindow{
			NominalStart: monday,
			Start:        monday,
			End:          monday.AddDate(0, 0, 6),
		}
		if w.Start.Before(start) {
			w.Start = start
		}
		if w.End.After(end) {
			w.End = end
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}
