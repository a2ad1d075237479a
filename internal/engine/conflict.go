package engine

import (
	"time"

	"staff-planner/internal/models"
)

// ConflictResult lists the existing assignments overlapping a candidate and
// the exact days on which they overlap. An empty Assignments slice means the
// candidate can be persisted directly.
type ConflictResult struct {
	Assignments []models.Assignment `json:"assignments"`
	Days        []time.Time         `json:"days"`
}

func (r *ConflictResult) HasConflict() bool {
	return len(r.Assignments) > 0
}

// CheckConflict walks every day of the candidate's interval and unions the
// existing assignments of the same person covering that day. Candidates
// starting or ending on a weekend day are rejected before detection; this
// policy applies to every creation path. Weekend days inside the interval
// are allowed, they never consume capacity.
func CheckConflict(candidate models.Assignment, existing []models.Assignment) (*ConflictResult, error) {
	days, err := EnumerateDays(candidate.StartDate, candidate.EndDate)
	if err != nil {
		return nil, err
	}

	if IsWeekend(days[0]) {
		return nil, &WeekendAssignmentError{Date: days[0]}
	}
	if last := days[len(days)-1]; IsWeekend(last) {
		return nil, &WeekendAssignmentError{Date: last}
	}

	result := &ConflictResult{Assignments: []models.Assignment{}, Days: []time.Time{}}
	seen := map[uint]bool{}

	for _, d := range days {
		dayHit := false
		for i := range existing {
			a := existing[i]
			if a.PersonID != candidate.PersonID {
				continue
			}
			if !a.CoversDay(d) {
				continue
			}
			dayHit = true
			if !seen[a.ID] {
				seen[a.ID] = true
				result.Assignments = append(result.Assignments, a)
			}
		}
		if dayHit {
			result.Days = append(result.Days, d)
		}
	}

	return result, nil
}

// CheckDailyCapacity sums the allocation of existing assignments plus the
// candidate for every day of the candidate's interval and fails when any day
// exceeds 100%. Used by the add policy before layering the candidate on top.
func CheckDailyCapacity(candidate models.Assignment, existing []models.Assignment) error {
	days, err := EnumerateDays(candidate.StartDate, candidate.EndDate)
	if err != nil {
		return err
	}

	overloaded := []OverloadedDay{}
	for _, d := range days {
		total := candidate.AllocationPercent
		for i := range existing {
			a := existing[i]
			if a.PersonID == candidate.PersonID && a.ID != candidate.ID && a.CoversDay(d) {
				total += a.AllocationPercent
			}
		}
		if total > 100 {
			overloaded = append(overloaded, OverloadedDay{Date: d, TotalPercent: total})
		}
	}

	if len(overloaded) > 0 {
		return &CapacityExceededError{Days: overloaded}
	}
	return nil
}
