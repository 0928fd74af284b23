package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (service.Outcome, error)
	Register(ctx context.Context, name, email, password string) (service.Outcome, error)
	Logout(ctx context.Context) (service.Outcome, error)
	CurrentUser(ctx context.Context) (service.Outcome, error)
	UpdateProfile(ctx context.Context, data record.Record) (service.Outcome, error)
}

// TokenKeeper persists the opaque session token between runs.
type TokenKeeper interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

type AuthStore struct {
	status
	svc    AuthService
	keeper TokenKeeper

	user          record.Record
	business      record.Record
	token         string
	authenticated bool
}

func NewAuth(svc AuthService, keeper TokenKeeper) *AuthStore {
	s := &AuthStore{svc: svc, keeper: keeper}
	if keeper != nil {
		if token, err := keeper.Load(); err == nil && token != "" {
			s.token = token
			s.authenticated = true
		}
	}
	return s
}

func (s *AuthStore) User() record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AuthStore) Business() record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.business
}

// Token is used as the client's bearer token source.
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AuthStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// TokenExpiry reads the expiry claim without verifying the signature.
// Display only; the backend remains the authority on token validity.
func (s *AuthStore) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *AuthStore) Login(ctx context.Context, email, password string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Login(ctx, email, password)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	user := out.Payload.Child("user")
	token := out.Payload.String("token")
	s.mu.Lock()
	s.user = user
	s.business = out.Payload.Child("business")
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	s.saveToken(token)
	return success(user)
}

func (s *AuthStore) Register(ctx context.Context, name, email, password string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Register(ctx, name, email, password)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	user := out.Payload.Child("user")
	token := out.Payload.String("token")
	s.mu.Lock()
	s.user = user
	s.business = out.Payload.Child("business")
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	s.saveToken(token)
	return success(user)
}

func (s *AuthStore) Logout(ctx context.Context) Result[struct{}] {
	s.begin()
	defer s.end()

	out, err := s.svc.Logout(ctx)
	if msg, ok := s.check(out, err); !ok {
		return failure[struct{}](msg)
	}

	s.Clear()
	return success(struct{}{})
}

func (s *AuthStore) FetchCurrentUser(ctx context.Context) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.CurrentUser(ctx)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	user := out.Payload.Child("user")
	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
	return success(user)
}

func (s *AuthStore) UpdateProfile(ctx context.Context, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.UpdateProfile(ctx, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	user := out.Payload.Child("user")
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return success(user)
}

// Clear drops the session locally regardless of backend state.
func (s *AuthStore) Clear() {
	s.mu.Lock()
	s.user = nil
	s.business = nil
	s.token = ""
	s.authenticated = false
	s.lastErr = ""
	s.mu.Unlock()
	if s.keeper != nil {
		if err := s.keeper.Clear(); err != nil {
			slog.Warn("token clear failed", "err", err)
		}
	}
}

func (s *AuthStore) saveToken(token string) {
	if s.keeper == nil || token == "" {
		return
	}
	if err := s.keeper.Save(token); err != nil {
		slog.Warn("token save failed", "err", err)
	}
}
