package handler

import (
	"net/http"
)

func (s *Server) handlePersonCapacity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	from, to, err := queryDateRange(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := s.capacity.PersonSummary(id, from, to)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleTeamCapacity(w http.ResponseWriter, r *http.Request) {
	from, to, err := queryDateRange(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	leadID, err := queryUint(r, "lead_id")
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := s.capacity.TeamSummary(leadID, from, to)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, summary)
}

// handleCapacityRows serves the flat per-person/per-project table rows
func (s *Server) handleCapacityRows(w http.ResponseWriter, r *http.Request) {
	from, to, err := queryDateRange(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	leadID, err := queryUint(r, "lead_id")
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := s.capacity.CapacityRows(leadID, from, to)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rows)
}

// handleWeeklyReport serves the week-bucketed staffing table; with
// format=export it serves the flattened sheet consumed by Excel/PDF
// rendering collaborators.
func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := queryDateRange(r)
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	leadID, err := queryUint(r, "lead_id")
	if err != nil {
		s.writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("format") == "export" {
		sheet, err := s.capacity.WeeklyExport(leadID, from, to)
		if err != nil {
			s.writeEngineError(w, err)
			return
		}
		s.respondJSON(w, http.StatusOK, sheet)
		return
	}

	table, err := s.capacity.WeeklyReport(leadID, from, to)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, table)
}
