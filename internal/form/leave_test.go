package form

import (
	"context"
	"testing"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
	"hrmobile/internal/store"
)

type fakeLeaveTarget struct {
	createCalls int
	updateCalls int
	fetchCalls  int
	lastID      string
	lastPayload record.Record
}

func (f *fakeLeaveTarget) Create(_ context.Context, data record.Record) store.Result[record.Record] {
	f.createCalls++
	f.lastPayload = data
	return store.Result[record.Record]{OK: true, Value: data}
}

func (f *fakeLeaveTarget) Update(_ context.Context, id string, data record.Record) store.Result[record.Record] {
	f.updateCalls++
	f.lastID = id
	f.lastPayload = data
	return store.Result[record.Record]{OK: true, Value: data}
}

func (f *fakeLeaveTarget) FetchMine(_ context.Context, _ service.LeaveListQuery) store.Result[[]record.Record] {
	f.fetchCalls++
	return store.Result[[]record.Record]{OK: true}
}

func (f *fakeLeaveTarget) Pagination() store.Window { return store.Window{} }

func TestLeaveSubmit(t *testing.T) {
	target := &fakeLeaveTarget{}
	f := NewLeaveForm(target, nil)

	res := f.Submit(context.Background(), LeaveInput{
		Type:      "annual",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-11",
		Reason:    " family trip ",
	})
	if !res.OK || res.Message != "leave request created" {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.createCalls != 1 || target.fetchCalls != 1 {
		t.Fatalf("expected create+refresh, got %d/%d", target.createCalls, target.fetchCalls)
	}
	if target.lastPayload.String("reason") != "family trip" {
		t.Fatalf("expected trimmed reason, got %q", target.lastPayload.String("reason"))
	}
}

func TestLeaveDateOrder(t *testing.T) {
	target := &fakeLeaveTarget{}
	f := NewLeaveForm(target, nil)

	input := LeaveInput{Type: "annual", StartDate: "2026-09-11", EndDate: "2026-09-07"}
	res := f.Submit(context.Background(), input)
	if res.OK {
		t.Fatal("expected validation failure")
	}
	if _, ok := res.FieldErrors["endDate"]; !ok {
		t.Fatalf("expected issue on endDate, got %v", res.FieldErrors)
	}
	if target.createCalls != 0 {
		t.Fatal("validation failure must not reach the service")
	}

	// Single-day leave is allowed.
	input.EndDate = input.StartDate
	if res := f.Submit(context.Background(), input); !res.OK {
		t.Fatalf("equal dates must pass, got %+v", res)
	}
}

func TestLeaveUpdateEdit(t *testing.T) {
	target := &fakeLeaveTarget{}
	f := NewLeaveForm(target, record.Record{"id": "lv4"})

	res := f.Submit(context.Background(), LeaveInput{
		Type: "sick", StartDate: "2026-09-02", EndDate: "2026-09-03",
	})
	if !res.OK || res.Message != "leave request updated" {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.updateCalls != 1 || target.lastID != "lv4" {
		t.Fatalf("expected update of lv4, got %d id=%q", target.updateCalls, target.lastID)
	}
}
