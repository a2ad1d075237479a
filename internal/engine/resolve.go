package engine

import (
	"fmt"

	"staff-planner/internal/models"
)

// Policy selects how a detected conflict is resolved
type Policy string

const (
	// PolicyReplace gives the candidate exclusive precedence, splitting
	// partially overlapping assignments around it.
	PolicyReplace Policy = "replace"
	// PolicyAdd layers the candidate alongside existing assignments,
	// rejecting if any day's summed allocation would exceed 100%.
	PolicyAdd Policy = "add"
)

type OpKind string

const (
	OpDelete OpKind = "delete"
	OpInsert OpKind = "insert"
)

// WriteOp is one store operation of a resolution plan. The caller executes
// the plan atomically: deletes first, then inserts, inside one transaction.
type WriteOp struct {
	Kind         OpKind
	AssignmentID uint               // delete only
	Assignment   *models.Assignment // insert only
}

// PlanResolution turns a detected conflict into the ordered write operations
// that resolve it. The plan is computed in full before anything is written,
// so a validation failure produces no operations at all.
func PlanResolution(policy Policy, conflict *ConflictResult, candidate models.Assignment, existing []models.Assignment) ([]WriteOp, error) {
	switch policy {
	case PolicyReplace:
		return planReplace(conflict, candidate), nil
	case PolicyAdd:
		if err := CheckDailyCapacity(candidate, existing); err != nil {
			return nil, err
		}
		insert := candidate
		return []WriteOp{{Kind: OpInsert, Assignment: &insert}}, nil
	default:
		return nil, fmt.Errorf("unknown resolution policy %q", policy)
	}
}

// planReplace deletes every conflicting assignment, recreates truncated
// copies of the parts extending before/after the candidate, then inserts the
// candidate unmodified.
func planReplace(conflict *ConflictResult, candidate models.Assignment) []WriteOp {
	start, end := Day(candidate.StartDate), Day(candidate.EndDate)

	ops := []WriteOp{}
	for i := range conflict.Assignments {
		a := conflict.Assignments[i]
		ops = append(ops, WriteOp{Kind: OpDelete, AssignmentID: a.ID})

		if Day(a.StartDate).Before(start) {
			left := a
			left.ID = 0
			left.EndDate = start.AddDate(0, 0, -1)
			ops = append(ops, WriteOp{Kind: OpInsert, Assignment: &left})
		}
		if Day(a.EndDate).After(end) {
			right := a
			right.ID = 0
			right.StartDate = end.AddDate(0, 0, 1)
			ops = append(ops, WriteOp{Kind: OpInsert, Assignment: &right})
		}
	}

	insert := candidate
	ops = append(ops, WriteOp{Kind: OpInsert, Assignment: &insert})
	return ops
}
