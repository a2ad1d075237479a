// internal/service/staffing.go
package service

import (
	"fmt"

	"staff-planner/internal/engine"
	"staff-planner/internal/models"
	"staff-planner/internal/repository"

	"github.com/sirupsen/logrus"
)

type StaffingService struct {
	assignmentRepo repository.AssignmentRepository
	personRepo     repository.PersonRepository
	projectRepo    repository.ProjectRepository
	logger         *logrus.Logger
}

func NewStaffingService(
	assignmentRepo repository.AssignmentRepository,
	personRepo repository.PersonRepository,
	projectRepo repository.ProjectRepository,
) *StaffingService {
	return &StaffingService{
		assignmentRepo: assignmentRepo,
		personRepo:     personRepo,
		projectRepo:    projectRepo,
		logger:         logrus.New(),
	}
}

// PlanAssignment validates a candidate and runs conflict detection against
// the person's stored assignments. An empty conflict set means the candidate
// can be created directly.
func (s *StaffingService) PlanAssignment(candidate models.Assignment) (*engine.ConflictResult, error) {
	if !candidate.IsValid() {
		return nil, fmt.Errorf("invalid assignment: person, project, dates and a 1-100 allocation are required")
	}

	known, err := s.personRepo.Exists(candidate.PersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up person: %v", err)
	}
	if !known {
		return nil, fmt.Errorf("person %d not found", candidate.PersonID)
	}

	project, err := s.projectRepo.GetByID(candidate.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up project: %v", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %d not found", candidate.ProjectID)
	}

	existing, err := s.assignmentRepo.GetByPersonID(candidate.PersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing assignments: %v", err)
	}

	return engine.CheckConflict(candidate, existing)
}

// CreateAssignment persists a conflict-free candidate
func (s *StaffingService) CreateAssignment(candidate models.Assignment, conflict *engine.ConflictResult) (*models.Assignment, error) {
	if conflict.HasConflict() {
		return nil, fmt.Errorf("assignment conflicts with %d existing assignments, a resolution policy is required", len(conflict.Assignments))
	}

	if err := s.assignmentRepo.Create(&candidate); err != nil {
		s.logger.WithError(err).Error("Failed to create assignment")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":        candidate.ID,
		"person_id": candidate.PersonID,
		"percent":   candidate.AllocationPercent,
	}).Info("Assignment created")
	return &candidate, nil
}

// ApplyResolution plans the chosen policy and executes the resulting write
// operations in one transaction. A rejected plan performs no writes.
func (s *StaffingService) ApplyResolution(policy engine.Policy, conflict *engine.ConflictResult, candidate models.Assignment) error {
	existing, err := s.assignmentRepo.GetByPersonID(candidate.PersonID)
	if err != nil {
		return fmt.Errorf("failed to load existing assignments: %v", err)
	}

	ops, err := engine.PlanResolution(policy, conflict, candidate, existing)
	if err != nil {
		return err
	}

	if err := s.assignmentRepo.ApplyOps(ops); err != nil {
		s.logger.WithError(err).WithField("policy", policy).Error("Failed to apply resolution plan")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"policy":    policy,
		"person_id": candidate.PersonID,
		"ops":       len(ops),
	}).Info("Conflict resolved")
	return nil
}

// DeleteAssignment removes one assignment
func (s *StaffingService) DeleteAssignment(id uint) error {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if assignment == nil {
		return fmt.Errorf("assignment %d not found", id)
	}

	if err := s.assignmentRepo.Delete(id); err != nil {
		return err
	}

	s.logger.WithField("id", id).Info("Assignment deleted")
	return nil
}

// GetPersonAssignments returns all assignments of one person
func (s *StaffingService) GetPersonAssignments(personID uint) ([]models.Assignment, error) {
	return s.assignmentRepo.GetByPersonID(personID)
}
