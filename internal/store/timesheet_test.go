package store

import (
	"context"
	"testing"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
)

type fakeTimesheets struct {
	calls   map[string]int
	results map[string]service.Outcome
	errs    map[string]error
}

func newFakeTimesheets() *fakeTimesheets {
	return &fakeTimesheets{
		calls:   map[string]int{},
		results: map[string]service.Outcome{},
		errs:    map[string]error{},
	}
}

func (f *fakeTimesheets) reply(method string) (service.Outcome, error) {
	f.calls[method]++
	if err := f.errs[method]; err != nil {
		return service.Outcome{}, err
	}
	if out, ok := f.results[method]; ok {
		return out, nil
	}
	return service.Outcome{Success: true, Payload: record.Record{"success": true}}, nil
}

func (f *fakeTimesheets) ListMine(context.Context, service.TimesheetListQuery) (service.Outcome, error) {
	return f.reply("ListMine")
}
func (f *fakeTimesheets) Create(context.Context, record.Record) (service.Outcome, error) {
	return f.reply("Create")
}
func (f *fakeTimesheets) Update(context.Context, string, record.Record) (service.Outcome, error) {
	return f.reply("Update")
}
func (f *fakeTimesheets) Delete(context.Context, string) (service.Outcome, error) {
	return f.reply("Delete")
}

func TestTimesheetListShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload record.Record
		wantIDs []string
	}{
		{
			name: "data is the slice",
			payload: record.Record{
				"data": []any{map[string]any{"uuid": "t1"}, map[string]any{"uuid": "t2"}},
			},
			wantIDs: []string{"t1", "t2"},
		},
		{
			name: "nested under timesheets",
			payload: record.Record{
				"data": map[string]any{"timesheets": []any{map[string]any{"id": "t3"}}},
			},
			wantIDs: []string{"t3"},
		},
		{
			name: "nested under items",
			payload: record.Record{
				"data": map[string]any{"items": []any{map[string]any{"_id": "t4"}}},
			},
			wantIDs: []string{"t4"},
		},
		{
			name: "nested under records",
			payload: record.Record{
				"data": map[string]any{"records": []any{map[string]any{"guid": "t5"}}},
			},
			wantIDs: []string{"t5"},
		},
		{
			name:    "missing slice yields empty collection",
			payload: record.Record{"data": map[string]any{}},
			wantIDs: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			fake := newFakeTimesheets()
			fake.results["ListMine"] = successPayload(tc.payload)

			s := NewTimesheet(fake)
			res := s.FetchMine(context.Background(), service.TimesheetListQuery{})
			if !res.OK {
				t.Fatalf("unexpected failure: %s", res.Error)
			}
			got := ids(s.Timesheets())
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %v, got %v", tc.wantIDs, got)
			}
			for i := range got {
				if got[i] != tc.wantIDs[i] {
					t.Fatalf("expected %v, got %v", tc.wantIDs, got)
				}
			}
		})
	}
}

func TestTimesheetWindowTotalFallback(t *testing.T) {
	items := make([]any, 7)
	for i := range items {
		items[i] = map[string]any{"uuid": string(rune('a' + i))}
	}
	fake := newFakeTimesheets()
	fake.results["ListMine"] = successPayload(record.Record{"data": items})

	s := NewTimesheet(fake)
	s.FetchMine(context.Background(), service.TimesheetListQuery{Page: 1, Limit: 10})
	if w := s.Pagination(); w.Total != 7 {
		t.Fatalf("expected total 7, got %d", w.Total)
	}
}

func TestTimesheetCreateUpdateDelete(t *testing.T) {
	fake := newFakeTimesheets()
	fake.results["Create"] = successPayload(record.Record{
		"timesheet": map[string]any{"uuid": "new"},
	})
	fake.results["Update"] = successPayload(record.Record{
		"timesheet": map[string]any{"uuid": "new", "notes": "edited"},
	})

	s := NewTimesheet(fake)

	if res := s.Create(context.Background(), record.Record{"date": "2026-01-05"}); !res.OK {
		t.Fatalf("create failed: %s", res.Error)
	}
	if got := ids(s.Timesheets()); len(got) != 1 || got[0] != "new" {
		t.Fatalf("expected [new], got %v", got)
	}

	if res := s.Update(context.Background(), "new", record.Record{"notes": "edited"}); !res.OK {
		t.Fatalf("update failed: %s", res.Error)
	}
	if got := s.Timesheets(); got[0].String("notes") != "edited" {
		t.Fatalf("expected updated record, got %v", got[0])
	}

	if res := s.Delete(context.Background(), "new"); !res.OK {
		t.Fatalf("delete failed: %s", res.Error)
	}
	if got := s.Timesheets(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}
