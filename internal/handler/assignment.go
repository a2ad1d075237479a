package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"staff-planner/internal/engine"
	"staff-planner/internal/models"
)

// AssignmentRequest is the JSON body of assignment creation and checks.
// Dates are YYYY-MM-DD; Policy applies only when a conflict is found.
type AssignmentRequest struct {
	PersonID          uint   `json:"person_id"`
	ProjectID         uint   `json:"project_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	AllocationPercent int    `json:"allocation_percent"`
	Type              string `json:"type"`
	Notes             string `json:"notes"`
	Policy            string `json:"policy,omitempty"` // replace | add
}

func (req *AssignmentRequest) toModel() (models.Assignment, error) {
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("invalid end_date, expected YYYY-MM-DD")
	}

	t := req.Type
	if t == "" {
		t = models.AssignmentTypeDevelopment
	}

	return models.Assignment{
		PersonID:          req.PersonID,
		ProjectID:         req.ProjectID,
		StartDate:         start,
		EndDate:           end,
		AllocationPercent: req.AllocationPercent,
		Type:              t,
		Notes:             req.Notes,
	}, nil
}

// ConflictResponse is returned with 409 when a candidate conflicts and no
// policy was supplied; the client re-submits with policy replace or add.
type ConflictResponse struct {
	Error    string                 `json:"error"`
	Code     int                    `json:"code"`
	Conflict *engine.ConflictResult `json:"conflict"`
	Policies []engine.Policy        `json:"policies"`
}

func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	candidate, err := req.toModel()
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	conflict, err := s.staffing.PlanAssignment(candidate)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	if !conflict.HasConflict() {
		created, err := s.staffing.CreateAssignment(candidate, conflict)
		if err != nil {
			s.writeEngineError(w, err)
			return
		}
		s.respondJSON(w, http.StatusCreated, created)
		return
	}

	if req.Policy == "" {
		s.respondJSON(w, http.StatusConflict, ConflictResponse{
			Error:    "assignment conflicts with existing assignments",
			Code:     http.StatusConflict,
			Conflict: conflict,
			Policies: []engine.Policy{engine.PolicyReplace, engine.PolicyAdd},
		})
		return
	}

	if err := s.staffing.ApplyResolution(engine.Policy(req.Policy), conflict, candidate); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"status": "resolved", "policy": req.Policy})
}

func (s *Server) handleCheckAssignment(w http.ResponseWriter, r *http.Request) {
	var req AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	candidate, err := req.toModel()
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	conflict, err := s.staffing.PlanAssignment(candidate)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, conflict)
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	personID, err := queryUint(r, "person_id")
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if personID == 0 {
		s.writeJSONError(w, "person_id query parameter is required", http.StatusBadRequest)
		return
	}

	assignments, err := s.staffing.GetPersonAssignments(personID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, assignments)
}

func (s *Server) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.staffing.DeleteAssignment(id); err != nil {
		s.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
