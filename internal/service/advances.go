package service

import (
	"context"
	"net/http"
	"net/url"

	"hrmobile/internal/record"
)

type Advances struct {
	client Doer
}

func NewAdvances(client Doer) *Advances {
	return &Advances{client: client}
}

type AdvanceListQuery struct {
	Page   int
	Limit  int
	Status string
}

func (s *Advances) ListMine(ctx context.Context, q AdvanceListQuery) (Outcome, error) {
	query := pageQuery(q.Page, q.Limit)
	setIfPresent(query, "status", q.Status)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/advances", query, nil))
}

func (s *Advances) Statistics(ctx context.Context, year string) (Outcome, error) {
	query := url.Values{}
	setIfPresent(query, "year", year)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/advances/statistics", query, nil))
}

func (s *Advances) Get(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/advances/"+url.PathEscape(id), nil, nil))
}

func (s *Advances) Create(ctx context.Context, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/advances", nil, data))
}

func (s *Advances) Update(ctx context.Context, id string, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPut, "/advances/"+url.PathEscape(id), nil, data))
}

func (s *Advances) Delete(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodDelete, "/advances/"+url.PathEscape(id), nil, nil))
}

func (s *Advances) ListForEmployee(ctx context.Context, employeeID string, q AdvanceListQuery) (Outcome, error) {
	query := pageQuery(q.Page, q.Limit)
	setIfPresent(query, "status", q.Status)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/employees/"+url.PathEscape(employeeID)+"/advances", query, nil))
}

func (s *Advances) Approve(ctx context.Context, employeeID, advanceID, status, note string) (Outcome, error) {
	body := record.Record{"status": status}
	if note != "" {
		body["approvalNote"] = note
	}
	path := "/employees/" + url.PathEscape(employeeID) + "/advances/" + url.PathEscape(advanceID) + "/approve"
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, path, nil, body))
}
