package models

import (
	"strings"
	"time"
)

// RegionNational marks a holiday that applies to every region of its country
const RegionNational = "NACIONAL"

type Holiday struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Description string    `gorm:"not null" json:"description"`
	Country     string    `gorm:"type:varchar(40);not null" json:"country"`
	Region      string    `gorm:"type:varchar(40)" json:"region"` // empty or NACIONAL = country-wide
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}

// IsNational checks whether the holiday applies regardless of region
func (h *Holiday) IsNational() bool {
	return h.Region == "" || strings.EqualFold(h.Region, RegionNational)
}

// AppliesTo checks whether the holiday applies to a person's region
func (h *Holiday) AppliesTo(region string) bool {
	return h.IsNational() || strings.EqualFold(h.Region, region)
}

// MatchesDay checks the date by calendar day, ignoring time-of-day and zone
func (h *Holiday) MatchesDay(d time.Time) bool {
	return h.Date.Year() == d.Year() &&
		h.Date.Month() == d.Month() &&
		h.Date.Day() == d.Day()
}
