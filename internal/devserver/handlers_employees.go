package devserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmobile/internal/record"
)

func (s *Server) handleEmployeeList(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	search := strings.ToLower(r.URL.Query().Get("search"))

	s.mu.Lock()
	filtered := make([]record.Record, 0, len(s.employees))
	for _, emp := range s.employees {
		if department != "" && emp.String("department") != department {
			continue
		}
		if search != "" && !matchesSearch(emp, search) {
			continue
		}
		filtered = append(filtered, emp)
	}
	s.mu.Unlock()

	page, pagination := paginate(filtered, r)
	respondOK(w, r, record.Record{"employees": page, "pagination": pagination})
}

func (s *Server) handleEmployeeDeleted(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	deleted := append([]record.Record(nil), s.deleted...)
	s.mu.Unlock()

	page, pagination := paginate(deleted, r)
	respondOK(w, r, record.Record{"employees": page, "pagination": pagination})
}

func (s *Server) handleEmployeeStatistics(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	departments := map[string]int{}
	for _, emp := range s.employees {
		if dep := emp.String("department"); dep != "" {
			departments[dep]++
		}
	}
	stats := record.Record{
		"total":       len(s.employees) + len(s.deleted),
		"active":      len(s.employees),
		"deleted":     len(s.deleted),
		"departments": departments,
	}
	s.mu.Unlock()

	respondOK(w, r, record.Record{"statistics": stats})
}

func (s *Server) handleEmployeeMe(w http.ResponseWriter, r *http.Request) {
	emp := s.employeeForCaller(r)
	if emp == nil {
		respondFail(w, r, http.StatusNotFound, "not_found", "no employee profile for this account")
		return
	}
	respondOK(w, r, record.Record{"employee": emp})
}

func (s *Server) handleEmployeeUpdateMe(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	c := callerClaims(r.Context())
	s.mu.Lock()
	idx := -1
	if c != nil {
		for i, emp := range s.employees {
			if strings.EqualFold(emp.String("email"), c.Email) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "no employee profile for this account")
		return
	}
	merge(s.employees[idx], body)
	emp := s.employees[idx]
	s.mu.Unlock()

	respondOK(w, r, record.Record{"employee": emp})
}

func (s *Server) handleEmployeeGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	idx := indexByID(s.employees, id)
	var emp record.Record
	if idx >= 0 {
		emp = s.employees[idx]
	}
	s.mu.Unlock()

	if emp == nil {
		respondFail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	respondOK(w, r, record.Record{"employee": emp})
}

func (s *Server) handleEmployeeCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	if strings.TrimSpace(body.String("firstName")) == "" {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "firstName is required")
		return
	}

	s.mu.Lock()
	body["_id"] = fmt.Sprintf("emp-%d", s.nextEmp)
	s.nextEmp++
	s.employees = append(s.employees, body)
	s.mu.Unlock()

	// Some backend builds nest the created entity twice.
	respondCreated(w, r, record.Record{"employee": record.Record{"employee": body}})
}

func (s *Server) handleEmployeeUpdate(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	idx := indexByID(s.employees, id)
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	merge(s.employees[idx], body)
	emp := s.employees[idx]
	s.mu.Unlock()

	respondOK(w, r, record.Record{"employee": emp})
}

func (s *Server) handleEmployeeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	idx := indexByID(s.employees, id)
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	emp := s.employees[idx]
	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	s.deleted = append(s.deleted, emp)
	s.mu.Unlock()

	respondOK(w, r, record.Record{"status": "deleted"})
}

func (s *Server) handleEmployeeRestore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	idx := indexByID(s.deleted, id)
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "deleted employee not found")
		return
	}
	emp := s.deleted[idx]
	s.deleted = append(s.deleted[:idx], s.deleted[idx+1:]...)
	s.employees = append(s.employees, emp)
	s.mu.Unlock()

	respondOK(w, r, record.Record{"employee": emp})
}

func (s *Server) handleEmployeeCreateUser(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	id := chi.URLParam(r, "id")
	email := strings.ToLower(strings.TrimSpace(body.String("email")))
	password := body.String("password")
	if email == "" || password == "" {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "email and password are required")
		return
	}

	s.mu.Lock()
	idx := indexByID(s.employees, id)
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	if _, exists := s.accounts[email]; exists {
		s.mu.Unlock()
		respondFail(w, r, http.StatusConflict, "email_taken", "an account with this email already exists")
		return
	}
	hash, err := hashPassword(password)
	if err != nil {
		s.mu.Unlock()
		respondFail(w, r, http.StatusInternalServerError, "hash_error", "failed to store credentials")
		return
	}
	emp := s.employees[idx]
	name := strings.TrimSpace(emp.String("firstName") + " " + emp.String("lastName"))
	acct := &account{ID: uuid.NewString(), Name: name, Email: email, Hash: hash}
	s.accounts[email] = acct
	emp["email"] = email
	s.mu.Unlock()

	respondCreated(w, r, record.Record{"user": accountRecord(acct)})
}

func (s *Server) employeeForCaller(r *http.Request) record.Record {
	c := callerClaims(r.Context())
	if c == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.employees {
		if strings.EqualFold(emp.String("email"), c.Email) {
			return emp
		}
	}
	return nil
}

func matchesSearch(emp record.Record, search string) bool {
	for _, key := range []string{"firstName", "lastName", "email", "position"} {
		if strings.Contains(strings.ToLower(emp.String(key)), search) {
			return true
		}
	}
	return false
}

func indexByID(list []record.Record, id string) int {
	for i, rec := range list {
		if record.EnsureID(rec).ID() == id {
			return i
		}
	}
	return -1
}

func merge(dst, src record.Record) {
	for k, v := range src {
		if k == "id" || k == "_id" {
			continue
		}
		dst[k] = v
	}
}
