package form

import (
	"context"
	"testing"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
	"hrmobile/internal/store"
)

type fakeTimesheetTarget struct {
	createCalls int
	updateCalls int
	fetchCalls  int
	lastID      string
	lastPayload record.Record
	lastQuery   service.TimesheetListQuery
	window      store.Window
	failWith    string
}

func (f *fakeTimesheetTarget) Create(_ context.Context, data record.Record) store.Result[record.Record] {
	f.createCalls++
	f.lastPayload = data
	if f.failWith != "" {
		return store.Result[record.Record]{Error: f.failWith}
	}
	return store.Result[record.Record]{OK: true, Value: data}
}

func (f *fakeTimesheetTarget) Update(_ context.Context, id string, data record.Record) store.Result[record.Record] {
	f.updateCalls++
	f.lastID = id
	f.lastPayload = data
	if f.failWith != "" {
		return store.Result[record.Record]{Error: f.failWith}
	}
	return store.Result[record.Record]{OK: true, Value: data}
}

func (f *fakeTimesheetTarget) FetchMine(_ context.Context, q service.TimesheetListQuery) store.Result[[]record.Record] {
	f.fetchCalls++
	f.lastQuery = q
	return store.Result[[]record.Record]{OK: true}
}

func (f *fakeTimesheetTarget) Pagination() store.Window {
	return f.window
}

func validInput() TimesheetInput {
	return TimesheetInput{
		Date:      "2026-08-14",
		StartTime: "09:00",
		EndTime:   "18:00",
	}
}

func TestDurationComputation(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		breakMins   string
		wantMinutes int
		wantOK      bool
		wantLabel   string
	}{
		{
			name: "full day with break", start: "09:00", end: "18:00", breakMins: "60",
			wantMinutes: 480, wantOK: true, wantLabel: "8.00",
		},
		{
			name: "break exceeding span clamps to zero", start: "09:00", end: "09:30", breakMins: "60",
			wantMinutes: 0, wantOK: true, wantLabel: "0.00",
		},
		{
			name: "no break", start: "08:15", end: "12:00",
			wantMinutes: 225, wantOK: true, wantLabel: "3.75",
		},
		{
			name: "end equals start suppressed", start: "09:00", end: "09:00",
			wantOK: false,
		},
		{
			name: "end before start suppressed", start: "09:00", end: "08:00",
			wantOK: false,
		},
		{
			name: "incomplete times suppressed", start: "09:00", end: "",
			wantOK: false,
		},
		{
			name: "garbage break treated as zero", start: "09:00", end: "10:00", breakMins: "abc",
			wantMinutes: 60, wantOK: true, wantLabel: "1.00",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			minutes, ok := DurationMinutes(tc.start, tc.end, tc.breakMins)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if !ok {
				if label := DurationLabel(tc.start, tc.end, tc.breakMins); label != "" {
					t.Fatalf("expected suppressed label, got %q", label)
				}
				return
			}
			if minutes != tc.wantMinutes {
				t.Fatalf("expected %d minutes, got %d", tc.wantMinutes, minutes)
			}
			if label := DurationLabel(tc.start, tc.end, tc.breakMins); label != tc.wantLabel {
				t.Fatalf("expected label %q, got %q", tc.wantLabel, label)
			}
		})
	}
}

func TestValidationBlocksServiceCall(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*TimesheetInput)
		wantField string
	}{
		{
			name:      "end before start",
			mutate:    func(in *TimesheetInput) { in.StartTime = "09:00"; in.EndTime = "08:00" },
			wantField: "endTime",
		},
		{
			name:      "missing date",
			mutate:    func(in *TimesheetInput) { in.Date = "" },
			wantField: "date",
		},
		{
			name:      "loose date format",
			mutate:    func(in *TimesheetInput) { in.Date = "14/08/2026" },
			wantField: "date",
		},
		{
			name:      "loose time format",
			mutate:    func(in *TimesheetInput) { in.StartTime = "9:00" },
			wantField: "startTime",
		},
		{
			name:      "out of range time",
			mutate:    func(in *TimesheetInput) { in.EndTime = "25:00" },
			wantField: "endTime",
		},
		{
			name:      "negative break",
			mutate:    func(in *TimesheetInput) { in.BreakMinutes = "-5" },
			wantField: "breakMinutes",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			target := &fakeTimesheetTarget{}
			f := NewTimesheetForm(target, nil)

			input := validInput()
			tc.mutate(&input)

			res := f.Submit(context.Background(), input)
			if res.OK {
				t.Fatal("expected validation failure")
			}
			if _, ok := res.FieldErrors[tc.wantField]; !ok {
				t.Fatalf("expected issue on %q, got %v", tc.wantField, res.FieldErrors)
			}
			if target.createCalls+target.updateCalls != 0 {
				t.Fatal("validation failure must not reach the service")
			}
		})
	}
}

func TestEndBeforeStartMessage(t *testing.T) {
	f := NewTimesheetForm(&fakeTimesheetTarget{}, nil)
	input := validInput()
	input.StartTime = "09:00"
	input.EndTime = "08:00"

	issues := f.Validate(input)
	if issues["endTime"] != "end time must be after start time" {
		t.Fatalf("expected fixed end-time message, got %v", issues)
	}
}

func TestSubmitCreates(t *testing.T) {
	target := &fakeTimesheetTarget{}
	f := NewTimesheetForm(target, nil)

	input := validInput()
	input.BreakMinutes = "45"
	input.Notes = "  client visits  "

	res := f.Submit(context.Background(), input)
	if !res.OK || res.Message != "timesheet entry created" {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.createCalls != 1 || target.updateCalls != 0 {
		t.Fatalf("expected one create, got %d/%d", target.createCalls, target.updateCalls)
	}
	if target.lastPayload.String("notes") != "client visits" {
		t.Fatalf("expected trimmed notes, got %q", target.lastPayload.String("notes"))
	}
	if v, _ := target.lastPayload.Number("breakMinutes"); v != 45 {
		t.Fatalf("expected numeric break, got %v", target.lastPayload["breakMinutes"])
	}
	if target.fetchCalls != 1 {
		t.Fatal("expected list refresh after success")
	}
	if target.lastQuery.Page != 1 || target.lastQuery.Limit != 10 {
		t.Fatalf("expected default window refresh, got %+v", target.lastQuery)
	}
}

func TestSubmitOmitsEmptyNotes(t *testing.T) {
	target := &fakeTimesheetTarget{}
	f := NewTimesheetForm(target, nil)

	input := validInput()
	input.Notes = "   "
	if res := f.Submit(context.Background(), input); !res.OK {
		t.Fatalf("unexpected failure %+v", res)
	}
	if _, present := target.lastPayload["notes"]; present {
		t.Fatal("blank notes must be absent, not empty")
	}
}

func TestSubmitUpdatesEditTarget(t *testing.T) {
	target := &fakeTimesheetTarget{window: store.Window{Page: 3, Limit: 20}}
	f := NewTimesheetForm(target, record.Record{"_id": "ts9"})

	res := f.Submit(context.Background(), validInput())
	if !res.OK || res.Message != "timesheet entry updated" {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.updateCalls != 1 || target.lastID != "ts9" {
		t.Fatalf("expected update of ts9, got %d calls id=%q", target.updateCalls, target.lastID)
	}
	if target.lastQuery.Page != 3 || target.lastQuery.Limit != 20 {
		t.Fatalf("expected refresh with last-known window, got %+v", target.lastQuery)
	}
}

func TestSubmitSurfacesStoreError(t *testing.T) {
	target := &fakeTimesheetTarget{failWith: "backend rejected entry"}
	f := NewTimesheetForm(target, nil)

	res := f.Submit(context.Background(), validInput())
	if res.OK || res.Error != "backend rejected entry" {
		t.Fatalf("expected verbatim store error, got %+v", res)
	}
	if target.fetchCalls != 0 {
		t.Fatal("no refresh after failure")
	}
}

func TestPrefillNormalizesFieldDrift(t *testing.T) {
	f := NewTimesheetForm(&fakeTimesheetTarget{}, nil)
	input := f.Prefill(record.Record{
		"date":          "2026-08-14T00:00:00Z",
		"clockIn":       "2026-08-14T09:00:00Z",
		"clockOut":      "18:00",
		"breakDuration": "30",
		"description":   "from older build",
	})

	if input.Date != "2026-08-14" {
		t.Fatalf("unexpected date %q", input.Date)
	}
	if input.StartTime != "09:00" || input.EndTime != "18:00" {
		t.Fatalf("unexpected times %q %q", input.StartTime, input.EndTime)
	}
	if input.BreakMinutes != "30" || input.Notes != "from older build" {
		t.Fatalf("unexpected break/notes %q %q", input.BreakMinutes, input.Notes)
	}
}
