package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"staff-planner/internal/config"
	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/internal/service"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	personRepo, err := repository.NewGormPersonRepository(db)
	if err != nil {
		t.Fatalf("failed to create person repository: %v", err)
	}
	projectRepo, err := repository.NewGormProjectRepository(db)
	if err != nil {
		t.Fatalf("failed to create project repository: %v", err)
	}
	holidayRepo, err := repository.NewGormHolidayRepository(db)
	if err != nil {
		t.Fatalf("failed to create holiday repository: %v", err)
	}
	assignmentRepo, err := repository.NewGormAssignmentRepository(db)
	if err != nil {
		t.Fatalf("failed to create assignment repository: %v", err)
	}

	cfg := &config.ServerConfig{APIKey: testAPIKey, DefaultCountry: "ES"}
	return NewServer(
		service.NewStaffingService(assignmentRepo, personRepo, projectRepo),
		service.NewCapacityService(personRepo, projectRepo, assignmentRepo, holidayRepo),
		service.NewRosterService(personRepo, projectRepo, holidayRepo, assignmentRepo),
		cfg,
	)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v0/persons", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status without API key = %d, want 401", rec.Code)
	}
}

func TestAssignmentConflictFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v0/persons", models.Person{
		Name: "Ana", Email: "ana@example.com", Region: "Madrid",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create person status = %d: %s", rec.Code, rec.Body.String())
	}
	var person models.Person
	decodeBody(t, rec, &person)

	rec = doJSON(t, s, http.MethodPost, "/api/v0/projects", models.Project{
		Code: "CLI-001", Name: "Cliente", Tipology: models.TipologyBillable,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project status = %d: %s", rec.Code, rec.Body.String())
	}
	var project models.Project
	decodeBody(t, rec, &project)

	base := AssignmentRequest{
		PersonID:          person.ID,
		ProjectID:         project.ID,
		StartDate:         "2024-01-01",
		EndDate:           "2024-01-31",
		AllocationPercent: 100,
	}
	rec = doJSON(t, s, http.MethodPost, "/api/v0/assignments", base)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create assignment status = %d: %s", rec.Code, rec.Body.String())
	}

	// overlapping candidate without a policy: 409 plus the conflict set
	overlap := base
	overlap.StartDate = "2024-01-10"
	overlap.EndDate = "2024-01-15"
	overlap.AllocationPercent = 50

	rec = doJSON(t, s, http.MethodPost, "/api/v0/assignments", overlap)
	if rec.Code != http.StatusConflict {
		t.Fatalf("conflicting create status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
	var conflictResp ConflictResponse
	decodeBody(t, rec, &conflictResp)
	if len(conflictResp.Conflict.Assignments) != 1 {
		t.Fatalf("conflict response lists %d assignments, want 1", len(conflictResp.Conflict.Assignments))
	}

	// re-submit with the replace policy
	overlap.Policy = "replace"
	rec = doJSON(t, s, http.MethodPost, "/api/v0/assignments", overlap)
	if rec.Code != http.StatusCreated {
		t.Fatalf("replace status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/v0/assignments?person_id=%d", person.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list assignments status = %d", rec.Code)
	}
	var assignments []models.Assignment
	decodeBody(t, rec, &assignments)
	if len(assignments) != 3 {
		t.Errorf("store has %d assignments after replace, want 3", len(assignments))
	}
}

func TestWeekendAssignmentRejected(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v0/persons", models.Person{Name: "Ana", Region: "Madrid"})
	var person models.Person
	decodeBody(t, rec, &person)
	rec = doJSON(t, s, http.MethodPost, "/api/v0/projects", models.Project{Code: "P1", Name: "P"})
	var project models.Project
	decodeBody(t, rec, &project)

	// 2024-01-13 is a Saturday
	rec = doJSON(t, s, http.MethodPost, "/api/v0/assignments", AssignmentRequest{
		PersonID: person.ID, ProjectID: project.ID,
		StartDate: "2024-01-13", EndDate: "2024-01-15", AllocationPercent: 100,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("weekend assignment status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestHolidayImportAndCapacity(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v0/persons", models.Person{Name: "Ana", Region: "Madrid"})
	var person models.Person
	decodeBody(t, rec, &person)

	doc := map[string]interface{}{
		"country": "ES",
		"year":    2024,
		"holidays": []map[string]string{
			// Tuesday within the queried range
			{"date": "2024-01-09", "description": "Fiesta", "region": "NACIONAL"},
		},
	}
	rec = doJSON(t, s, http.MethodPost, "/api/v0/holidays/import", doc)
	if rec.Code != http.StatusCreated {
		t.Fatalf("import status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet,
		fmt.Sprintf("/api/v0/capacity/persons/%d?from=2024-01-08&to=2024-01-21", person.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("capacity status = %d: %s", rec.Code, rec.Body.String())
	}

	var summary struct {
		TotalDays      int     `json:"total_days"`
		WorkDays       int     `json:"work_days"`
		HolidayDays    int     `json:"holiday_days"`
		UnassignedDays float64 `json:"unassigned_days"`
	}
	decodeBody(t, rec, &summary)
	if summary.TotalDays != 14 || summary.WorkDays != 10 || summary.HolidayDays != 1 {
		t.Errorf("summary = %+v, want 14 total / 10 work / 1 holiday", summary)
	}
	if summary.UnassignedDays != 9 {
		t.Errorf("unassigned = %f, want 9", summary.UnassignedDays)
	}
}

func TestHolidayListRangeFilter(t *testing.T) {
	s := newTestServer(t)

	for _, h := range []HolidayRequest{
		{Date: "2024-01-01", Description: "Año Nuevo", Region: "NACIONAL"},
		{Date: "2024-06-24", Description: "Sant Joan", Region: "Cataluña"},
	} {
		if rec := doJSON(t, s, http.MethodPost, "/api/v0/holidays", h); rec.Code != http.StatusCreated {
			t.Fatalf("create holiday status = %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, s, http.MethodGet, "/api/v0/holidays?from=2024-01-01&to=2024-03-31", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered list status = %d: %s", rec.Code, rec.Body.String())
	}
	var holidays []models.Holiday
	decodeBody(t, rec, &holidays)
	if len(holidays) != 1 {
		t.Fatalf("filtered list has %d holidays, want 1", len(holidays))
	}
	if holidays[0].Description != "Año Nuevo" {
		t.Errorf("filtered holiday = %q, want Año Nuevo", holidays[0].Description)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v0/holidays", nil)
	decodeBody(t, rec, &holidays)
	if len(holidays) != 2 {
		t.Errorf("unfiltered list has %d holidays, want 2", len(holidays))
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v0/holidays?from=2024-01-01", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("half-open range status = %d, want 400", rec.Code)
	}
}

func TestProjectListActiveFilter(t *testing.T) {
	s := newTestServer(t)

	if rec := doJSON(t, s, http.MethodPost, "/api/v0/projects", models.Project{Code: "P1", Name: "Activo"}); rec.Code != http.StatusCreated {
		t.Fatalf("create project status = %d: %s", rec.Code, rec.Body.String())
	}
	rec := doJSON(t, s, http.MethodPost, "/api/v0/projects", models.Project{Code: "P2", Name: "Cerrado"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project status = %d: %s", rec.Code, rec.Body.String())
	}
	var closed models.Project
	decodeBody(t, rec, &closed)

	closed.Active = false
	rec = doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/v0/projects/%d", closed.ID), closed)
	if rec.Code != http.StatusOK {
		t.Fatalf("close project status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v0/projects?active=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("active list status = %d", rec.Code)
	}
	var projects []models.Project
	decodeBody(t, rec, &projects)
	if len(projects) != 1 || projects[0].Code != "P1" {
		t.Errorf("active list = %+v, want only P1", projects)
	}
}

func TestCapacityOverloadRejectedOnAdd(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v0/persons", models.Person{Name: "Ana", Region: "Madrid"})
	var person models.Person
	decodeBody(t, rec, &person)
	rec = doJSON(t, s, http.MethodPost, "/api/v0/projects", models.Project{Code: "P1", Name: "P"})
	var project models.Project
	decodeBody(t, rec, &project)

	base := AssignmentRequest{
		PersonID: person.ID, ProjectID: project.ID,
		StartDate: "2024-03-04", EndDate: "2024-03-08", AllocationPercent: 60,
	}
	if rec = doJSON(t, s, http.MethodPost, "/api/v0/assignments", base); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	over := base
	over.AllocationPercent = 50
	over.Policy = "add"
	rec = doJSON(t, s, http.MethodPost, "/api/v0/assignments", over)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("overloaded add status = %d, want 422: %s", rec.Code, rec.Body.String())
	}

	var errResp ErrorResponse
	decodeBody(t, rec, &errResp)
	if len(errResp.Days) != 5 {
		t.Errorf("error reports %d offending days, want 5", len(errResp.Days))
	}
}
