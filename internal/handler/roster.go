package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"staff-planner/internal/models"
)

func (s *Server) handleListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := s.roster.GetPersons()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, persons)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var person models.Person
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.roster.CreatePerson(&person); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, person)
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	person, err := s.roster.GetPerson(id)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if person == nil {
		s.writeJSONError(w, "person not found", http.StatusNotFound)
		return
	}
	s.respondJSON(w, http.StatusOK, person)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var person models.Person
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	person.ID = id

	if err := s.roster.UpdatePerson(&person); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, person)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.roster.DeletePerson(id); err != nil {
		s.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	var err error
	if r.URL.Query().Get("active") == "true" {
		projects, err = s.roster.GetActiveProjects()
	} else {
		projects, err = s.roster.GetProjects()
	}
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.roster.CreateProject(&project); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, project)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := s.roster.GetProject(id)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if project == nil {
		s.writeJSONError(w, "project not found", http.StatusNotFound)
		return
	}
	s.respondJSON(w, http.StatusOK, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	project.ID = id

	if err := s.roster.UpdateProject(&project); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.roster.DeleteProject(id); err != nil {
		s.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HolidayRequest carries one manually entered holiday
type HolidayRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Region      string `json:"region"`
}

func (s *Server) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	var holidays []models.Holiday
	var err error
	// without a from/to window the full table is returned
	if r.URL.Query().Get("from") != "" || r.URL.Query().Get("to") != "" {
		from, to, rangeErr := queryDateRange(r)
		if rangeErr != nil {
			s.writeJSONError(w, rangeErr.Error(), http.StatusBadRequest)
			return
		}
		holidays, err = s.roster.GetHolidaysInRange(from, to)
	} else {
		holidays, err = s.roster.GetHolidays()
	}
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, holidays)
}

func (s *Server) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req HolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		s.writeJSONError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	country := req.Country
	if country == "" {
		country = s.cfg.DefaultCountry
	}

	holiday := models.Holiday{
		Date:        date,
		Description: req.Description,
		Country:     country,
		Region:      req.Region,
	}
	if err := s.roster.CreateHoliday(&holiday); err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, holiday)
}

// handleImportHolidays bulk-loads a holiday-calendar JSON document posted as
// the request body. Pass replace=true to swap out an already loaded year.
func (s *Server) handleImportHolidays(w http.ResponseWriter, r *http.Request) {
	replace := r.URL.Query().Get("replace") == "true"
	count, batchID, err := s.roster.ImportHolidayCalendar(r.Body, replace)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"imported": count,
		"batch_id": batchID,
		"message":  fmt.Sprintf("%d holidays imported", count),
	})
}

func (s *Server) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.roster.DeleteHoliday(id); err != nil {
		s.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
