package service

import (
	"context"
	"net/http"
	"net/url"

	"hrmobile/internal/record"
)

type Timesheets struct {
	client Doer
}

func NewTimesheets(client Doer) *Timesheets {
	return &Timesheets{client: client}
}

type TimesheetListQuery struct {
	Page      int
	Limit     int
	StartDate string
	EndDate   string
}

func (s *Timesheets) ListMine(ctx context.Context, q TimesheetListQuery) (Outcome, error) {
	query := pageQuery(q.Page, q.Limit)
	setIfPresent(query, "startDate", q.StartDate)
	setIfPresent(query, "endDate", q.EndDate)
	return outcomeFrom(s.client.Do(ctx, http.MethodGet, "/timesheets", query, nil))
}

func (s *Timesheets) Create(ctx context.Context, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPost, "/timesheets", nil, data))
}

func (s *Timesheets) Update(ctx context.Context, id string, data record.Record) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodPut, "/timesheets/"+url.PathEscape(id), nil, data))
}

func (s *Timesheets) Delete(ctx context.Context, id string) (Outcome, error) {
	return outcomeFrom(s.client.Do(ctx, http.MethodDelete, "/timesheets/"+url.PathEscape(id), nil, nil))
}
