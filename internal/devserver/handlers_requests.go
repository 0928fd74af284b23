package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrmobile/internal/record"
)

// Leaves and advances share their lifecycle: owned by the calling
// account, created pending, approvable through the employee-scoped
// route. Both carry numeric ids, as the production backend does.

func (s *Server) handleLeaveList(w http.ResponseWriter, r *http.Request) {
	s.listRequests(w, r, &s.leaves, "leaves", func(rec record.Record) bool {
		if t := r.URL.Query().Get("type"); t != "" && rec.String("type") != t {
			return false
		}
		return true
	})
}

func (s *Server) handleLeaveCreate(w http.ResponseWriter, r *http.Request) {
	s.createRequest(w, r, &s.leaves, "leave")
}

func (s *Server) handleLeaveGet(w http.ResponseWriter, r *http.Request) {
	s.getRequest(w, r, s.leaves, "leave")
}

func (s *Server) handleLeaveUpdate(w http.ResponseWriter, r *http.Request) {
	s.updateRequest(w, r, s.leaves, "leave")
}

func (s *Server) handleLeaveDelete(w http.ResponseWriter, r *http.Request) {
	s.deleteRequest(w, r, &s.leaves, "leave")
}

func (s *Server) handleLeaveStatistics(w http.ResponseWriter, r *http.Request) {
	s.requestStatistics(w, r, s.leaves)
}

func (s *Server) handleEmployeeLeaves(w http.ResponseWriter, r *http.Request) {
	s.listForEmployee(w, r, s.leaves, "leaves")
}

func (s *Server) handleLeaveApprove(w http.ResponseWriter, r *http.Request) {
	s.approveRequest(w, r, s.leaves, "leave", chi.URLParam(r, "leaveID"))
}

func (s *Server) handleAdvanceList(w http.ResponseWriter, r *http.Request) {
	s.listRequests(w, r, &s.advances, "advances", nil)
}

func (s *Server) handleAdvanceCreate(w http.ResponseWriter, r *http.Request) {
	s.createRequest(w, r, &s.advances, "advance")
}

func (s *Server) handleAdvanceGet(w http.ResponseWriter, r *http.Request) {
	s.getRequest(w, r, s.advances, "advance")
}

func (s *Server) handleAdvanceUpdate(w http.ResponseWriter, r *http.Request) {
	s.updateRequest(w, r, s.advances, "advance")
}

func (s *Server) handleAdvanceDelete(w http.ResponseWriter, r *http.Request) {
	s.deleteRequest(w, r, &s.advances, "advance")
}

func (s *Server) handleAdvanceStatistics(w http.ResponseWriter, r *http.Request) {
	s.requestStatistics(w, r, s.advances)
}

func (s *Server) handleEmployeeAdvances(w http.ResponseWriter, r *http.Request) {
	s.listForEmployee(w, r, s.advances, "advances")
}

func (s *Server) handleAdvanceApprove(w http.ResponseWriter, r *http.Request) {
	s.approveRequest(w, r, s.advances, "advance", chi.URLParam(r, "advanceID"))
}

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request, list *[]record.Record, key string, extra func(record.Record) bool) {
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	filtered := make([]record.Record, 0, len(*list))
	for _, rec := range *list {
		if status != "" && rec.String("status") != status {
			continue
		}
		if extra != nil && !extra(rec) {
			continue
		}
		filtered = append(filtered, rec)
	}
	s.mu.Unlock()

	page, pagination := paginate(filtered, r)
	respondOK(w, r, record.Record{key: page, "pagination": pagination})
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request, list *[]record.Record, key string) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	c := callerClaims(r.Context())
	s.mu.Lock()
	body["id"] = s.nextReq
	s.nextReq++
	body["status"] = "pending"
	if c != nil {
		body["employeeId"] = c.UserID
	}
	*list = append(*list, body)
	s.mu.Unlock()

	respondCreated(w, r, record.Record{key: body})
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request, list []record.Record, key string) {
	s.mu.Lock()
	idx := indexByID(list, chi.URLParam(r, "id"))
	var rec record.Record
	if idx >= 0 {
		rec = list[idx]
	}
	s.mu.Unlock()

	if rec == nil {
		respondFail(w, r, http.StatusNotFound, "not_found", key+" not found")
		return
	}
	respondOK(w, r, record.Record{key: rec})
}

func (s *Server) updateRequest(w http.ResponseWriter, r *http.Request, list []record.Record, key string) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	s.mu.Lock()
	idx := indexByID(list, chi.URLParam(r, "id"))
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", key+" not found")
		return
	}
	merge(list[idx], body)
	rec := list[idx]
	s.mu.Unlock()

	respondOK(w, r, record.Record{key: rec})
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request, list *[]record.Record, key string) {
	s.mu.Lock()
	idx := indexByID(*list, chi.URLParam(r, "id"))
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", key+" not found")
		return
	}
	*list = append((*list)[:idx], (*list)[idx+1:]...)
	s.mu.Unlock()

	respondOK(w, r, record.Record{"status": "deleted"})
}

func (s *Server) requestStatistics(w http.ResponseWriter, r *http.Request, list []record.Record) {
	s.mu.Lock()
	stats := record.Record{"total": len(list), "pending": 0, "approved": 0, "rejected": 0}
	for _, rec := range list {
		switch rec.String("status") {
		case "pending":
			stats["pending"] = stats["pending"].(int) + 1
		case "approved":
			stats["approved"] = stats["approved"].(int) + 1
		case "rejected":
			stats["rejected"] = stats["rejected"].(int) + 1
		}
	}
	s.mu.Unlock()

	respondOK(w, r, record.Record{"statistics": stats})
}

func (s *Server) listForEmployee(w http.ResponseWriter, r *http.Request, list []record.Record, key string) {
	employeeID := chi.URLParam(r, "id")

	s.mu.Lock()
	filtered := make([]record.Record, 0, len(list))
	for _, rec := range list {
		if rec.String("employeeId") == employeeID {
			filtered = append(filtered, rec)
		}
	}
	s.mu.Unlock()

	page, pagination := paginate(filtered, r)
	respondOK(w, r, record.Record{key: page, "pagination": pagination})
}

func (s *Server) approveRequest(w http.ResponseWriter, r *http.Request, list []record.Record, key, id string) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	status := body.String("status")
	if status == "" {
		status = "approved"
	}

	s.mu.Lock()
	idx := indexByID(list, id)
	if idx < 0 {
		s.mu.Unlock()
		respondFail(w, r, http.StatusNotFound, "not_found", key+" not found")
		return
	}
	list[idx]["status"] = status
	if note := body.String("approvalNote"); note != "" {
		list[idx]["approvalNote"] = note
	}
	rec := list[idx]
	s.mu.Unlock()

	respondOK(w, r, record.Record{key: rec})
}
