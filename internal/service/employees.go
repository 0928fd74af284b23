package service

import (
	"context"
	"net/http"
	"net/url"

	"hrmobile/internal/record"
)

type Employees struct {
	client Doer
}

func NewEmployees(client Doer) *Employees {
	return &Employees{client: client}
}

type EmployeeListQuery struct {
	Page       int
	Limit      int
	Department string
	Search     string
}

func (s *Employees) List(ctx context.Context, q EmployeeListQuery) (Outcome, error) {
	query := pageQuery(q.Page, q.Limit)
	setIfPresent(query, "department", q.Department)
	setIfPresent(query, "search", q.Search)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees", query, nil))
}

func (s *Employees) ListDeleted(ctx context.Context, page, limit int) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees/deleted", pageQuery(page, limit), nil))
}

func (s *Employees) Statistics(ctx context.Context) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees/statistics", nil, nil))
}

func (s *Employees) Me(ctx context.Context) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees/me", nil, nil))
}

func (s *Employees) UpdateMe(ctx context.Context, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPut, "/employees/me", nil, data))
}

func (s *Employees) Get(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), nil, nil))
}

func (s *Employees) Create(ctx context.Context, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/employees", nil, data))
}

func (s *Employees) Update(ctx context.Context, id string, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), nil, data))
}

func (s *Employees) Delete(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil))
}

func (s *Employees) Restore(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/employees/"+url.PathEscape(id)+"/restore", nil, nil))
}

// CreateUser provisions a login account for an employee.
func (s *Employees) CreateUser(ctx context.Context, employeeID, email, password string) (Outcome, error) {
	body := record.Record{"email": email, "password": password}
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/employees/"+url.PathEscape(employeeID)+"/user", nil, body))
}
