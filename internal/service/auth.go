package service

import (
	"context"
	"net/http"

	"hrmobile/internal/record"
)

type Auth struct {
	client Doer
}

func NewAuth(client Doer) *Auth {
	return &Auth{client: client}
}

func (s *Auth) Login(ctx context.Context, email, password string) (Outcome, error) {
	body := record.Record{"email": email, "password": password}
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/auth/login", nil, body))
}

func (s *Auth) Register(ctx context.Context, name, email, password string) (Outcome, error) {
	body := record.Record{"name": name, "email": email, "password": password}
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/auth/register", nil, body))
}

func (s *Auth) Logout(ctx context.Context) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil))
}

func (s *Auth) CurrentUser(ctx context.Context) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/auth/me", nil, nil))
}

func (s *Auth) UpdateProfile(ctx context.Context, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPut, "/auth/profile", nil, data))
}
