// Package devserver is an in-memory stand-in for the HR backend, meant
// for local development and integration tests of the client stack. It
// reproduces the backend's envelope quirks on purpose: employees carry
// Mongo-style _id, leaves and advances numeric id, timesheets uuid _id,
// and freshly created employees arrive double-nested.
package devserver

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmobile/internal/record"
)

const tokenTTL = 8 * time.Hour

type account struct {
	ID    string
	Name  string
	Email string
	Hash  string
}

type Server struct {
	secret string

	mu         sync.Mutex
	accounts   map[string]*account
	employees  []record.Record
	deleted    []record.Record
	leaves     []record.Record
	advances   []record.Record
	timesheets []record.Record
	nextEmp    int
	nextReq    int
}

func New(secret string) *Server {
	return &Server{
		secret:   secret,
		accounts: make(map[string]*account),
		nextEmp:  1,
		nextReq:  1,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID, logRequests, bodyLimit(1<<20))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/logout", s.handleLogout)
			r.Get("/me", s.handleAuthMe)
			r.Put("/profile", s.handleProfile)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.handleEmployeeList)
			r.Post("/", s.handleEmployeeCreate)
			r.Get("/deleted", s.handleEmployeeDeleted)
			r.Get("/statistics", s.handleEmployeeStatistics)
			r.Get("/me", s.handleEmployeeMe)
			r.Put("/me", s.handleEmployeeUpdateMe)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleEmployeeGet)
				r.Put("/", s.handleEmployeeUpdate)
				r.Delete("/", s.handleEmployeeDelete)
				r.Post("/restore", s.handleEmployeeRestore)
				r.Post("/user", s.handleEmployeeCreateUser)
				r.Get("/leaves", s.handleEmployeeLeaves)
				r.Post("/leaves/{leaveID}/approve", s.handleLeaveApprove)
				r.Get("/advances", s.handleEmployeeAdvances)
				r.Post("/advances/{advanceID}/approve", s.handleAdvanceApprove)
			})
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", s.handleLeaveList)
			r.Post("/", s.handleLeaveCreate)
			r.Get("/statistics", s.handleLeaveStatistics)
			r.Get("/{id}", s.handleLeaveGet)
			r.Put("/{id}", s.handleLeaveUpdate)
			r.Delete("/{id}", s.handleLeaveDelete)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Get("/", s.handleAdvanceList)
			r.Post("/", s.handleAdvanceCreate)
			r.Get("/statistics", s.handleAdvanceStatistics)
			r.Get("/{id}", s.handleAdvanceGet)
			r.Put("/{id}", s.handleAdvanceUpdate)
			r.Delete("/{id}", s.handleAdvanceDelete)
		})

		r.Route("/timesheets", func(r chi.Router) {
			r.Get("/", s.handleTimesheetList)
			r.Post("/", s.handleTimesheetCreate)
			r.Put("/{id}", s.handleTimesheetUpdate)
			r.Delete("/{id}", s.handleTimesheetDelete)
		})
	})

	return r
}

type ctxKey int

const ctxKeyClaims ctxKey = 1

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondFail(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		parsed, err := parseToken(s.secret, token)
		if err != nil {
			respondFail(w, r, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyClaims, parsed)))
	})
}

func callerClaims(ctx context.Context) *claims {
	c, _ := ctx.Value(ctxKeyClaims).(*claims)
	return c
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			r.Header.Set("X-Request-ID", uuid.NewString())
		}
		w.Header().Set("X-Request-ID", r.Header.Get("X-Request-ID"))
		next.ServeHTTP(w, r)
	})
}

func bodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"durationMs", time.Since(start).Milliseconds(),
			"requestId", requestID(r),
		)
	})
}

// paginate slices out one page and reports the pre-slice total, the way
// the backend's list endpoints do.
func paginate(list []record.Record, r *http.Request) ([]record.Record, record.Record) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	total := len(list)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return list[start:end], record.Record{"page": page, "limit": limit, "total": total}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func decodeBody(r *http.Request) (record.Record, bool) {
	var body record.Record
	if err := jsonDecode(r, &body); err != nil {
		return nil, false
	}
	if body == nil {
		body = record.Record{}
	}
	return body, true
}
