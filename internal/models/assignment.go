// internal/models/assignment.go
package models

import "time"

type Assignment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	PersonID          uint      `gorm:"not null;index" json:"person_id"`
	ProjectID         uint      `gorm:"not null;index" json:"project_id"`
	StartDate         time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate           time.Time `gorm:"type:date;not null" json:"end_date"` // inclusive
	AllocationPercent int       `gorm:"not null;check:allocation_percent >= 1 AND allocation_percent <= 100" json:"allocation_percent"`
	Type              string    `gorm:"type:varchar(20);not null;default:'development'" json:"type"` // development, vacation, support
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Person  Person  `gorm:"foreignKey:PersonID" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}

const (
	AssignmentTypeDevelopment = "development"
	AssignmentTypeVacation    = "vacation"
	AssignmentTypeSupport     = "support"
)

// CoversDay checks whether the closed interval [StartDate, EndDate] contains the day
func (a *Assignment) CoversDay(d time.Time) bool {
	return !dayBefore(d, a.StartDate) && !dayBefore(a.EndDate, d)
}

// Overlaps checks whether two closed intervals share at least one day
func (a *Assignment) Overlaps(start, end time.Time) bool {
	return !dayBefore(end, a.StartDate) && !dayBefore(a.EndDate, start)
}

// IsValid checks the data
func (a *Assignment) IsValid() bool {
	if a.PersonID == 0 || a.ProjectID == 0 {
		return false
	}
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return false
	}
	if dayBefore(a.EndDate, a.StartDate) {
		return false
	}
	if a.AllocationPercent < 1 || a.AllocationPercent > 100 {
		return false
	}
	return true
}

// dayBefore compares calendar days, ignoring time-of-day and zone
func dayBefore(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	if a.Month() != b.Month() {
		return a.Month() < b.Month()
	}
	return a.Day() < b.Day()
}
