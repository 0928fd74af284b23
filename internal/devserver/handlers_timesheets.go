package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmobile/internal/record"
)

func (s *Server) handleTimesheetList(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	s.mu.Lock()
	filtered := make([]record.Record, 0, len(s.timesheets))
	for _, rec := range s.timesheets {
		date := rec.String("date")
		if startDate != "" && date < startDate {
			continue
		}
		if endDate != "" && date > endDate {
			continue
		}
		filtered = append(filtered, rec)
	}
	s.mu.Unlock()

	page, pagination := paginate(filtered, r)
	respondOK(w, r, record.Record{"timesheets": page, "pagination": pagination})
}

func (s *Server) handleTimesheetCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	if body.String("date") == "" || body.String("startTime") == "" || body.String("endTime") == "" {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "date, startTime and endTime are required")
		return
	}

	c := callerClaims(r.Context())
	s.mu.Lock()
	body["_id"] = uuid.NewString()
	if c != nil {
		body["employeeId"] = c.UserID
	}
	s.timesheets = append(s.timesheets, body)
	s.mu.Unlock()

	respondCreated(w, r, record.Record{"timesheet": body})
}

func (s *Server) handleTimesheetUpdate(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	s.mu.Lock()
	idx := indexByID(s.timesheets, chi.URLParam(r, "id"))
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "timesheet not found")
		return
	}
	merge(s.timesheets[idx], body)
	rec := s.timesheets[idx]
	s.mu.Unlock()

	respondOK(w, r, record.Record{"timesheet": rec})
}

func (s *Server) handleTimesheetDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	idx := indexByID(s.timesheets, chi.URLParam(r, "id"))
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "timesheet not found")
		return
	}
	s.timesheets = append(s.timesheets[:idx], s.timesheets[idx+1:]...)
	s.mu.Unlock()

	respondOK(w, r, record.Record{"status": "deleted"})
}
