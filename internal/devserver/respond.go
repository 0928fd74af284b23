package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hrmobile/internal/record"
)

// The stub mirrors the production backend's flat envelope: a success
// flag plus entity keys at the top level, not nested under data.
func writeJSON(w http.ResponseWriter, status int, body record.Record) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func respondOK(w http.ResponseWriter, r *http.Request, body record.Record) {
	respondWith(w, r, http.StatusOK, body)
}

func respondCreated(w http.ResponseWriter, r *http.Request, body record.Record) {
	respondWith(w, r, http.StatusCreated, body)
}

func respondWith(w http.ResponseWriter, r *http.Request, status int, body record.Record) {
	if body == nil {
		body = record.Record{}
	}
	body["success"] = true
	body["requestId"] = requestID(r)
	writeJSON(w, status, body)
}

func respondFail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, record.Record{
		"success":   false,
		"error":     map[string]any{"code": code, "message": message},
		"requestId": requestID(r),
	})
}

func requestID(r *http.Request) string {
	return r.Header.Get("X-Request-ID")
}

func jsonDecode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
