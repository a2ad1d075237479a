package service

import (
	"fmt"
	"time"

	"staff-planner/internal/engine"
	"staff-planner/internal/models"
	"staff-planner/internal/repository"

	"github.com/sirupsen/logrus"
)

type CapacityService struct {
	personRepo     repository.PersonRepository
	projectRepo    repository.ProjectRepository
	assignmentRepo repository.AssignmentRepository
	holidayRepo    repository.HolidayRepository
	logger         *logrus.Logger
}

func NewCapacityService(
	personRepo repository.PersonRepository,
	projectRepo repository.ProjectRepository,
	assignmentRepo repository.AssignmentRepository,
	holidayRepo repository.HolidayRepository,
) *CapacityService {
	return &CapacityService{
		personRepo:     personRepo,
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		holidayRepo:    holidayRepo,
		logger:         logrus.New(),
	}
}

// PersonSummary aggregates one person's capacity over the range
func (s *CapacityService) PersonSummary(personID uint, start, end time.Time) (*engine.PersonCapacitySummary, error) {
	person, err := s.personRepo.GetByID(personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, fmt.Errorf("person %d not found", personID)
	}

	assignments, err := s.assignmentRepo.GetIntersecting(personID, start, end)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidayRepo.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	return engine.PersonCapacity(*person, start, end, assignments, holidays)
}

// TeamSummary aggregates every person, or one squad lead's people when
// leadID is non-zero.
func (s *CapacityService) TeamSummary(leadID uint, start, end time.Time) (*engine.TeamCapacitySummary, error) {
	people, err := s.teamMembers(leadID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetAllIntersecting(start, end)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidayRepo.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	return engine.TeamCapacity(people, start, end, assignments, holidays)
}

// CapacityRows flattens a team summary into display rows
func (s *CapacityService) CapacityRows(leadID uint, start, end time.Time) ([]engine.CapacityRow, error) {
	team, err := s.TeamSummary(leadID, start, end)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return engine.FormatCapacityRows(team, projects), nil
}

// WeeklyReport builds the week-bucketed staffing table for the range
func (s *CapacityService) WeeklyReport(leadID uint, start, end time.Time) (*engine.WeeklyStaffingTable, error) {
	people, err := s.teamMembers(leadID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetAllIntersecting(start, end)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidayRepo.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"people": len(people),
		"from":   start.Format("2006-01-02"),
		"to":     end.Format("2006-01-02"),
	}).Debug("Building weekly staffing report")

	return engine.WeeklyStaffing(people, start, end, assignments, holidays, projects)
}

// WeeklyExport shapes the weekly report for spreadsheet/PDF collaborators
func (s *CapacityService) WeeklyExport(leadID uint, start, end time.Time) (*engine.ExportSheet, error) {
	table, err := s.WeeklyReport(leadID, start, end)
	if err != nil {
		return nil, err
	}
	return engine.FormatWeeklyExport(table), nil
}

func (s *CapacityService) teamMembers(leadID uint) ([]models.Person, error) {
	if leadID == 0 {
		return s.personRepo.GetAll()
	}
	return s.personRepo.GetBySquadLead(leadID)
}
