// Package engine holds the assignment and capacity computations. Everything
// here is pure: inputs are slices already fetched from the store, outputs are
// values, and no function touches the database or the clock.
package engine

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("start date is after end date")

// WeekendAssignmentError rejects a candidate assignment that covers a
// Saturday or Sunday.
type WeekendAssignmentError struct {
	Date time.Time
}

func (e *WeekendAssignmentError) Error() string {
	return fmt.Sprintf("assignment covers weekend day %s", e.Date.Format("2006-01-02"))
}

// OverloadedDay is a day whose summed allocation would exceed 100%.
type OverloadedDay struct {
	Date         time.Time
	TotalPercent int
}

// CapacityExceededError carries every day the candidate would overload.
type CapacityExceededError struct {
	Days []OverloadedDay
}

func (e *CapacityExceededError) Error() string {
	if len(e.Days) == 0 {
		return "daily allocation exceeds 100%"
	}
	first := e.Days[0]
	if len(e.Days) == 1 {
		return fmt.Sprintf("allocation on %s would reach %d%%",
			first.Date.Format("2006-01-02"), first.TotalPercent)
	}
	return fmt.Sprintf("allocation on %s would reach %d%% (%d days affected)",
		first.Date.Format("2006-01-02"), first.TotalPercent, len(e.Days))
}
