package service

import (
	"fmt"
	"io"
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/pkg/calendarfile"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RosterService struct {
	personRepo     repository.PersonRepository
	projectRepo    repository.ProjectRepository
	holidayRepo    repository.HolidayRepository
	assignmentRepo repository.AssignmentRepository
	logger         *logrus.Logger
}

func NewRosterService(
	personRepo repository.PersonRepository,
	projectRepo repository.ProjectRepository,
	holidayRepo repository.HolidayRepository,
	assignmentRepo repository.AssignmentRepository,
) *RosterService {
	return &RosterService{
		personRepo:     personRepo,
		projectRepo:    projectRepo,
		holidayRepo:    holidayRepo,
		assignmentRepo: assignmentRepo,
		logger:         logrus.New(),
	}
}

func (s *RosterService) CreatePerson(person *models.Person) error {
	if person.Role == "" {
		person.Role = models.RoleMember
	}
	if !person.IsValid() {
		return fmt.Errorf("invalid person: name, region and a known role are required")
	}

	if person.Email != "" {
		existing, err := s.personRepo.GetByEmail(person.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("a person with email %s already exists", person.Email)
		}
	}

	if err := s.personRepo.Create(person); err != nil {
		s.logger.WithError(err).Error("Failed to create person")
		return err
	}

	s.logger.WithFields(logrus.Fields{"id": person.ID, "name": person.Name}).Info("Person created")
	return nil
}

func (s *RosterService) UpdatePerson(person *models.Person) error {
	if !person.IsValid() {
		return fmt.Errorf("invalid person: name, region and a known role are required")
	}

	existing, err := s.personRepo.GetByID(person.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("person %d not found", person.ID)
	}

	return s.personRepo.Update(person)
}

func (s *RosterService) GetPersons() ([]models.Person, error) {
	return s.personRepo.GetAll()
}

func (s *RosterService) GetPerson(id uint) (*models.Person, error) {
	return s.personRepo.GetByID(id)
}

// DeletePerson removes a person together with their assignments
func (s *RosterService) DeletePerson(id uint) error {
	if err := s.assignmentRepo.DeleteByPersonID(id); err != nil {
		return err
	}
	if err := s.personRepo.Delete(id); err != nil {
		return err
	}
	s.logger.WithField("id", id).Info("Person deleted")
	return nil
}

func (s *RosterService) CreateProject(project *models.Project) error {
	if project.Tipology == "" {
		project.Tipology = models.TipologyBillable
	}
	if !project.IsValid() {
		return fmt.Errorf("invalid project: code, name and a known tipology are required")
	}

	existing, err := s.projectRepo.GetByCode(project.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("a project with code %s already exists", project.Code)
	}

	if err := s.projectRepo.Create(project); err != nil {
		s.logger.WithError(err).Error("Failed to create project")
		return err
	}

	s.logger.WithFields(logrus.Fields{"id": project.ID, "code": project.Code}).Info("Project created")
	return nil
}

func (s *RosterService) UpdateProject(project *models.Project) error {
	if !project.IsValid() {
		return fmt.Errorf("invalid project: code, name and a known tipology are required")
	}

	existing, err := s.projectRepo.GetByID(project.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("project %d not found", project.ID)
	}

	return s.projectRepo.Update(project)
}

func (s *RosterService) GetProjects() ([]models.Project, error) {
	return s.projectRepo.GetAll()
}

func (s *RosterService) GetActiveProjects() ([]models.Project, error) {
	return s.projectRepo.GetActive()
}

func (s *RosterService) GetProject(id uint) (*models.Project, error) {
	return s.projectRepo.GetByID(id)
}

func (s *RosterService) DeleteProject(id uint) error {
	return s.projectRepo.Delete(id)
}

func (s *RosterService) CreateHoliday(holiday *models.Holiday) error {
	if holiday.Date.IsZero() || holiday.Description == "" || holiday.Country == "" {
		return fmt.Errorf("invalid holiday: date, description and country are required")
	}
	return s.holidayRepo.Create(holiday)
}

func (s *RosterService) GetHolidays() ([]models.Holiday, error) {
	return s.holidayRepo.GetAll()
}

func (s *RosterService) GetHolidaysInRange(start, end time.Time) ([]models.Holiday, error) {
	return s.holidayRepo.GetByDateRange(start, end)
}

func (s *RosterService) DeleteHoliday(id uint) error {
	return s.holidayRepo.Delete(id)
}

// ImportHolidayCalendar parses a holiday-calendar JSON document and bulk
// inserts its entries. A document for an already loaded year is rejected
// unless replace is set, which swaps out the stored entries of that year.
// Returns the number of inserted holidays and the import batch ID used in
// the log trail.
func (s *RosterService) ImportHolidayCalendar(r io.Reader, replace bool) (int, string, error) {
	batchID := uuid.New().String()

	cal, err := calendarfile.Parse(r)
	if err != nil {
		return 0, batchID, fmt.Errorf("failed to parse holiday calendar: %v", err)
	}

	loaded, err := s.holidayRepo.GetByYear(cal.Year)
	if err != nil {
		return 0, batchID, err
	}
	if len(loaded) > 0 {
		if !replace {
			return 0, batchID, fmt.Errorf("%d holidays already loaded for %d, re-import with replace to swap them", len(loaded), cal.Year)
		}
		if err := s.holidayRepo.DeleteByYear(cal.Year); err != nil {
			s.logger.WithError(err).WithField("batch", batchID).Error("Holiday re-import failed")
			return 0, batchID, err
		}
	}

	count, err := s.insertCalendar(cal, batchID)
	return count, batchID, err
}

// LoadHolidayCalendarFile seeds the holiday table from a calendar document
// on disk. A year that is already loaded is left untouched, so the seed is
// safe to repeat on every start.
func (s *RosterService) LoadHolidayCalendarFile(path string) error {
	cal, err := calendarfile.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse holiday calendar %s: %v", path, err)
	}

	loaded, err := s.holidayRepo.GetByYear(cal.Year)
	if err != nil {
		return err
	}
	if len(loaded) > 0 {
		s.logger.WithFields(logrus.Fields{"year": cal.Year, "count": len(loaded)}).
			Info("Holidays already loaded, skipping seed")
		return nil
	}

	_, err = s.insertCalendar(cal, uuid.New().String())
	return err
}

func (s *RosterService) insertCalendar(cal *calendarfile.Calendar, batchID string) (int, error) {
	holidays := make([]models.Holiday, 0, len(cal.Holidays))
	for _, entry := range cal.Holidays {
		holidays = append(holidays, models.Holiday{
			Date:        entry.Date,
			Description: entry.Description,
			Country:     cal.Country,
			Region:      entry.Region,
		})
	}

	if err := s.holidayRepo.BulkCreate(holidays); err != nil {
		s.logger.WithError(err).WithField("batch", batchID).Error("Holiday import failed")
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"batch":   batchID,
		"country": cal.Country,
		"year":    cal.Year,
		"count":   len(holidays),
	}).Info("Holiday calendar imported")
	return len(holidays), nil
}
