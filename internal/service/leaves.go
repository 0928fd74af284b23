package service

import (
	"context"
	"net/http"
	"net/url"

	"hrmobile/internal/record"
)

type Leaves struct {
	client Doer
}

func NewLeaves(client Doer) *Leaves {
	return &Leaves{client: client}
}

type LeaveListQuery struct {
	Page     int
	Limit    int
	Status   string
	Type     string
	Approved string
}

func (s *Leaves) ListMine(ctx context.Context, q LeaveListQuery) (Outcome, error) {
	query := pageQuery(q.Page, q.Limit)
	setIfPresent(query, "status", q.Status)
	setIfPresent(query, "type", q.Type)
	setIfPresent(query, "approved", q.Approved)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/leaves", query, nil))
}

func (s *Leaves) Statistics(ctx context.Context, year string) (Outcome, error) {
	query := url.Values{}
	setIfPresent(query, "year", year)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/leaves/statistics", query, nil))
}

func (s *Leaves) Get(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/leaves/"+url.PathEscape(id), nil, nil))
}

func (s *Leaves) Create(ctx context.Context, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/leaves", nil, data))
}

func (s *Leaves) Update(ctx context.Context, id string, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPut, "/leaves/"+url.PathEscape(id), nil, data))
}

func (s *Leaves) Delete(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodDelete, "/leaves/"+url.PathEscape(id), nil, nil))
}

// ListForEmployee is the manager view over another employee's leaves.
func (s *Leaves) ListForEmployee(ctx context.Context, employeeID string, q LeaveListQuery) (Outcome, error) {
	query := pageQuery(q.Page, q.Limit)
	setIfPresent(query, "status", q.Status)
	setIfPresent(query, "type", q.Type)
	setIfPresent(query, "approved", q.Approved)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees/"+url.PathEscape(employeeID)+"/leaves", query, nil))
}

func (s *Leaves) Approve(ctx context.Context, employeeID, leaveID, status, note string) (Outcome, error) {
	body := record.Record{"status": status}
	if note != "" {
		body["approvalNote"] = note
	}
	path := "/employees/" + url.PathEscape(employeeID) + "/leaves/" + url.PathEscape(leaveID) + "/approve"
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, path, nil, body))
}
