package devserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"hrmobile/internal/record"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	name := strings.TrimSpace(body.String("name"))
	email := strings.ToLower(strings.TrimSpace(body.String("email")))
	password := body.String("password")
	if name == "" || email == "" || password == "" {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "name, email and password are required")
		return
	}

	s.mu.Lock()
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
	acct := &account{ID: uuid.NewString(), Name: name, Email: email, Hash: hash}
	s.accounts[email] = acct
	s.mu.Unlock()

	token, err := generateToken(s.secret, claims{UserID: acct.ID, Name: acct.Name, Email: acct.Email}, tokenTTL)
	if err != nil {
		respondFail(w, r, http.StatusInternalServerError, "token_error", "failed to issue token")
		return
	}
	respondCreated(w, r, record.Record{
		"token":    token,
		"user":     accountRecord(acct),
		"business": businessRecord(acct),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(body.String("email")))

	s.mu.Lock()
	acct := s.accounts[email]
	s.mu.Unlock()

	if acct == nil || checkPassword(acct.Hash, body.String("password")) != nil {
		respondFail(w, r, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
		return
	}
	token, err := generateToken(s.secret, claims{UserID: acct.ID, Name: acct.Name, Email: acct.Email}, tokenTTL)
	if err != nil {
		respondFail(w, r, http.StatusInternalServerError, "token_error", "failed to issue token")
		return
	}
	respondOK(w, r, record.Record{
		"token":    token,
		"user":     accountRecord(acct),
		"business": businessRecord(acct),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	respondOK(w, r, record.Record{"status": "logged_out"})
}

func (s *Server) handleAuthMe(w http.ResponseWriter, r *http.Request) {
	acct := s.accountFor(callerClaims(r.Context()))
	if acct == nil {
		respondFail(w, r, http.StatusUnauthorized, "unauthorized", "account no longer exists")
		return
	}
	respondOK(w, r, record.Record{"user": accountRecord(acct)})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		respondFail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	s.mu.Lock()
	acct := s.lockedAccountFor(callerClaims(r.Context()))
	if acct == nil {
		s.mu.Unlock()
		respondFail(w, r, http.StatusUnauthorized, "unauthorized", "account no longer exists")
		return
	}
	if name := strings.TrimSpace(body.String("name")); name != "" {
		acct.Name = name
	}
	s.mu.Unlock()

	respondOK(w, r, record.Record{"user": accountRecord(acct)})
}

func (s *Server) accountFor(c *claims) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockedAccountFor(c)
}

func (s *Server) lockedAccountFor(c *claims) *account {
	if c == nil {
		return nil
	}
	return s.accounts[c.Email]
}

func accountRecord(acct *account) record.Record {
	return record.Record{"id": acct.ID, "name": acct.Name, "email": acct.Email}
}

func businessRecord(acct *account) record.Record {
	return record.Record{"id": "biz-" + acct.ID, "name": acct.Name + " workspace"}
}
