package engine

import (
	"errors"
	"testing"
	"time"

	"staff-planner/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnumerateDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantDays int
		wantErr  error
	}{
		{name: "single day", start: date(2024, 1, 10), end: date(2024, 1, 10), wantDays: 1},
		{name: "full january", start: date(2024, 1, 1), end: date(2024, 1, 31), wantDays: 31},
		{name: "across month boundary", start: date(2024, 2, 27), end: date(2024, 3, 2), wantDays: 5},
		{name: "leap day included", start: date(2024, 2, 28), end: date(2024, 3, 1), wantDays: 3},
		{name: "start after end", start: date(2024, 1, 2), end: date(2024, 1, 1), wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := EnumerateDays(tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("EnumerateDays() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("EnumerateDays() unexpected error: %v", err)
			}
			if len(days) != tt.wantDays {
				t.Errorf("EnumerateDays() returned %d days, want %d", len(days), tt.wantDays)
			}
			// round-trip property: count == (end - start).days + 1
			want := int(Day(tt.end).Sub(Day(tt.start)).Hours()/24) + 1
			if len(days) != want {
				t.Errorf("day count %d does not match interval length %d", len(days), want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	// 2024-01-06 is a Saturday
	if !IsWeekend(date(2024, 1, 6)) {
		t.Error("Saturday should be a weekend day")
	}
	if !IsWeekend(date(2024, 1, 7)) {
		t.Error("Sunday should be a weekend day")
	}
	if IsWeekend(date(2024, 1, 8)) {
		t.Error("Monday should not be a weekend day")
	}
	if IsWeekend(date(2024, 1, 5)) {
		t.Error("Friday should not be a weekend day")
	}
}

func TestIsHoliday(t *testing.T) {
	holidays := []models.Holiday{
		{Date: date(2024, 1, 1), Description: "Año Nuevo", Country: "ES", Region: "NACIONAL"},
		{Date: date(2024, 4, 23), Description: "Sant Jordi", Country: "ES", Region: "Cataluña"},
		{Date: date(2024, 5, 2), Description: "Día de Madrid", Country: "ES", Region: "Madrid"},
		{Date: date(2024, 12, 25), Description: "Navidad", Country: "ES", Region: ""},
	}

	tests := []struct {
		name   string
		day    time.Time
		region string
		want   bool
	}{
		{name: "national holiday applies everywhere", day: date(2024, 1, 1), region: "Madrid", want: true},
		{name: "empty region counts as national", day: date(2024, 12, 25), region: "Galicia", want: true},
		{name: "regional holiday in its region", day: date(2024, 4, 23), region: "Cataluña", want: true},
		{name: "regional match is case-insensitive", day: date(2024, 5, 2), region: "MADRID", want: true},
		{name: "regional holiday elsewhere", day: date(2024, 4, 23), region: "Madrid", want: false},
		{name: "ordinary day", day: date(2024, 6, 11), region: "Madrid", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.day, tt.region, holidays); got != tt.want {
				t.Errorf("IsHoliday(%s, %s) = %v, want %v", tt.day.Format("2006-01-02"), tt.region, got, tt.want)
			}
		})
	}
}

func TestWeeksInRange(t *testing.T) {
	// 2024-01-10 is a Wednesday, 2024-01-23 is a Tuesday
	weeks, err := WeeksInRange(date(2024, 1, 10), date(2024, 1, 23))
	if err != nil {
		t.Fatalf("WeeksInRange() unexpected error: %v", err)
	}
	if len(weeks) != 3 {
		t.Fatalf("WeeksInRange() returned %d weeks, want 3", len(weeks))
	}

	first := weeks[0]
	if !SameDay(first.NominalStart, date(2024, 1, 8)) {
		t.Errorf("first nominal start = %s, want Monday 2024-01-08", first.NominalStart.Format("2006-01-02"))
	}
	if !SameDay(first.Start, date(2024, 1, 10)) {
		t.Errorf("first week start should be clipped to range start, got %s", first.Start.Format("2006-01-02"))
	}
	if !SameDay(first.End, date(2024, 1, 14)) {
		t.Errorf("first week end = %s, want 2024-01-14", first.End.Format("2006-01-02"))
	}

	middle := weeks[1]
	if !SameDay(middle.Start, date(2024, 1, 15)) || !SameDay(middle.End, date(2024, 1, 21)) {
		t.Errorf("middle week should be the full week 15..21, got %s..%s",
			middle.Start.Format("2006-01-02"), middle.End.Format("2006-01-02"))
	}

	last := weeks[2]
	if !SameDay(last.End, date(2024, 1, 23)) {
		t.Errorf("last week end should be clipped to range end, got %s", last.End.Format("2006-01-02"))
	}

	if _, err := WeeksInRange(date(2024, 2, 1), date(2024, 1, 1)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("reversed range should return ErrInvalidRange, got %v", err)
	}
}

func TestWeeksInRangeSundayStart(t *testing.T) {
	// 2024-01-07 is a Sunday; under a Monday-first week it belongs to the
	// week that started on 2024-01-01.
	weeks, err := WeeksInRange(date(2024, 1, 7), date(2024, 1, 8))
	if err != nil {
		t.Fatalf("WeeksInRange() unexpected error: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("WeeksInRange() returned %d weeks, want 2", len(weeks))
	}
	if !SameDay(weeks[0].NominalStart, date(2024, 1, 1)) {
		t.Errorf("Sunday's nominal week start = %s, want 2024-01-01",
			weeks[0].NominalStart.Format("2006-01-02"))
	}
}
