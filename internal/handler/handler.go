// Package handler exposes the staffing services as a JSON HTTP API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"staff-planner/internal/config"
	"staff-planner/internal/engine"
	"staff-planner/internal/repository"
	"staff-planner/internal/service"

	"github.com/sirupsen/logrus"
)

type Server struct {
	router   *http.ServeMux
	staffing *service.StaffingService
	capacity *service.CapacityService
	roster   *service.RosterService
	cfg      *config.ServerConfig
	logger   *logrus.Logger
}

func NewServer(
	staffing *service.StaffingService,
	capacity *service.CapacityService,
	roster *service.RosterService,
	cfg *config.ServerConfig,
) *Server {
	s := &Server{
		router:   http.NewServeMux(),
		staffing: staffing,
		capacity: capacity,
		roster:   roster,
		cfg:      cfg,
		logger:   logrus.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	secured := http.NewServeMux()

	// Roster endpoints
	secured.HandleFunc("GET /api/v0/persons", s.handleListPersons)
	secured.HandleFunc("POST /api/v0/persons", s.handleCreatePerson)
	secured.HandleFunc("GET /api/v0/persons/{id}", s.handleGetPerson)
	secured.HandleFunc("PUT /api/v0/persons/{id}", s.handleUpdatePerson)
	secured.HandleFunc("DELETE /api/v0/persons/{id}", s.handleDeletePerson)

	secured.HandleFunc("GET /api/v0/projects", s.handleListProjects)
	secured.HandleFunc("POST /api/v0/projects", s.handleCreateProject)
	secured.HandleFunc("GET /api/v0/projects/{id}", s.handleGetProject)
	secured.HandleFunc("PUT /api/v0/projects/{id}", s.handleUpdateProject)
	secured.HandleFunc("DELETE /api/v0/projects/{id}", s.handleDeleteProject)

	secured.HandleFunc("GET /api/v0/holidays", s.handleListHolidays)
	secured.HandleFunc("POST /api/v0/holidays", s.handleCreateHoliday)
	secured.HandleFunc("POST /api/v0/holidays/import", s.handleImportHolidays)
	secured.HandleFunc("DELETE /api/v0/holidays/{id}", s.handleDeleteHoliday)

	// Assignment endpoints
	secured.HandleFunc("GET /api/v0/assignments", s.handleListAssignments)
	secured.HandleFunc("POST /api/v0/assignments", s.handleCreateAssignment)
	secured.HandleFunc("POST /api/v0/assignments/check", s.handleCheckAssignment)
	secured.HandleFunc("DELETE /api/v0/assignments/{id}", s.handleDeleteAssignment)

	// Capacity and report endpoints
	secured.HandleFunc("GET /api/v0/capacity/persons/{id}", s.handlePersonCapacity)
	secured.HandleFunc("GET /api/v0/capacity/team", s.handleTeamCapacity)
	secured.HandleFunc("GET /api/v0/reports/capacity", s.handleCapacityRows)
	secured.HandleFunc("GET /api/v0/reports/weekly", s.handleWeeklyReport)

	s.router.Handle("/api/", s.requestLogMiddleware(s.authMiddleware(secured)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error string   `json:"error"`
	Code  int      `json:"code"`
	Days  []string `json:"days,omitempty"` // offending days of a capacity rejection
}

func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	s.respondJSON(w, statusCode, ErrorResponse{Error: message, Code: statusCode})
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var weekendErr *engine.WeekendAssignmentError
	var capErr *engine.CapacityExceededError
	var writeErr *repository.WriteError

	switch {
	case errors.Is(err, engine.ErrInvalidRange):
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &weekendErr):
		s.writeJSONError(w, weekendErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &capErr):
		days := make([]string, 0, len(capErr.Days))
		for _, d := range capErr.Days {
			days = append(days, d.Date.Format("2006-01-02"))
		}
		s.respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: capErr.Error(),
			Code:  http.StatusUnprocessableEntity,
			Days:  days,
		})
	case errors.As(err, &writeErr):
		s.logger.WithError(err).Error("Store operation failed")
		s.writeJSONError(w, "store operation failed", http.StatusInternalServerError)
	default:
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
	}
}

func pathID(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// queryDateRange reads the from/to query parameters as YYYY-MM-DD dates
func queryDateRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("from"), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid or missing 'from' date, expected YYYY-MM-DD")
	}
	to, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("to"), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid or missing 'to' date, expected YYYY-MM-DD")
	}
	return from, to, nil
}

func queryUint(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(v), nil
}
