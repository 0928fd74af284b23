package form

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
	"hrmobile/internal/store"
)

type TimesheetInput struct {
	Date         string `validate:"required,dateymd"`
	StartTime    string `validate:"required,hhmm"`
	EndTime      string `validate:"required,hhmm"`
	BreakMinutes string `validate:"omitempty,breakmin"`
	Notes        string
}

var timesheetMessages = map[string]string{
	"date:required":         "date is required",
	"date:dateymd":          "date must be in YYYY-MM-DD format",
	"startTime:required":    "start time is required",
	"startTime:hhmm":        "time must be in HH:MM format",
	"endTime:required":      "end time is required",
	"endTime:hhmm":          "time must be in HH:MM format",
	"endTime:timeorder":     "end time must be after start time",
	"breakMinutes:breakmin": "break minutes must be a non-negative number",
}

// timesheetTimeOrder rejects end times at or before the start. Spanning
// midnight is rejected, not wrapped.
func timesheetTimeOrder(sl validator.StructLevel) {
	input := sl.Current().Interface().(TimesheetInput)
	start, okStart := toMinutes(input.StartTime)
	end, okEnd := toMinutes(input.EndTime)
	if !okStart || !okEnd {
		return
	}
	if end <= start {
		sl.ReportError(input.EndTime, "EndTime", "EndTime", "timeorder", "")
	}
}

// TimesheetTarget is the store surface the form drives.
type TimesheetTarget interface {
	Create(ctx context.Context, data record.Record) store.Result[record.Record]
	Update(ctx context.Context, id string, data record.Record) store.Result[record.Record]
	FetchMine(ctx context.Context, q service.TimesheetListQuery) store.Result[[]record.Record]
	Pagination() store.Window
}

// TimesheetForm drives one create-or-edit flow. An edit target with a
// known id at construction selects update; otherwise submit creates.
type TimesheetForm struct {
	target   TimesheetTarget
	editID   string
	validate *validator.Validate
}

func NewTimesheetForm(target TimesheetTarget, editTarget record.Record) *TimesheetForm {
	return &TimesheetForm{
		target:   target,
		editID:   record.EnsureID(editTarget).ID(),
		validate: newValidator(),
	}
}

func (f *TimesheetForm) Editing() bool {
	return f.editID != ""
}

// Prefill maps an existing record into form fields, absorbing the field
// name drift between backend builds.
func (f *TimesheetForm) Prefill(rec record.Record) TimesheetInput {
	if rec == nil {
		return TimesheetInput{}
	}
	return TimesheetInput{
		Date:         NormalizeDate(rec.String("date")),
		StartTime:    NormalizeTime(firstNonEmpty(rec, "startTime", "clockIn", "inTime")),
		EndTime:      NormalizeTime(firstNonEmpty(rec, "endTime", "clockOut", "outTime")),
		BreakMinutes: firstNonEmpty(rec, "breakMinutes", "breakDuration", "breakTime"),
		Notes:        firstNonEmpty(rec, "notes", "description"),
	}
}

// Validate returns per-field messages; empty means the input may be
// submitted.
func (f *TimesheetForm) Validate(input TimesheetInput) map[string]string {
	return fieldErrors(f.validate.Struct(input), timesheetMessages)
}

/// DurationMinutes computes worked minutes: (end - start) - break,
// clamped at zero. Not ok while the time pair is incomplete or end is
// not after start; the display suppresses the value then.
func DurationMinutes(startTime, endTime, breakMinutes string) (int, bool) {
	start, okStart := toMinutes(startTime)
	end, okEnd := toMinutes(endTime)
	if !okStart || !okEnd || end <= start {
		return 0, false
	}
	pause, err := strconv.Atoi(strings.TrimSpace(breakMinutes))
	if err != nil || pause < 0 {
		pause = 0
	}
	duration := end - start - pause
	if duration < 0 {
		duration = 0
	}
	return duration, true
}

// DurationLabel renders worked hours with two decimals, empty when the
// duration is suppressed.
func DurationLabel(startTime, endTime, breakMinutes string) string {
	minutes, ok := DurationMinutes(startTime, endTime, breakMinutes)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(float64(minutes)/60, 'f', 2, 64)
}

type SubmitResult struct {
	OK          bool
	Message     string
	Error       string
	FieldErrors map[string]string
}

// Submit validates, then creates or updates, then refreshes the list
// with the last-known pagination window. Validation failure never
// reaches the service.
func (f *TimesheetForm) Submit(ctx context.Context, input TimesheetInput) SubmitResult {
	if issues := f.Validate(input); len(issues) > 0 {
		return SubmitResult{FieldErrors: issues}
	}

	payload := record.Record{
		"date":      input.Date,
		"startTime": input.StartTime,
		"endTime":   input.EndTime,
	}
	if trimmed := strings.TrimSpace(input.BreakMinutes); trimmed != "" {
		minutes, _ := strconv.Atoi(trimmed)
		payload["breakMinutes"] = minutes
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		payload["notes"] = notes
	}

	var (
		res     store.Result[record.Record]
		message string
	)
	if f.editID != "" {
		res = f.target.Update(ctx, f.editID, payload)
		message = "timesheet entry updated"
	} else {
		res = f.target.Create(ctx, payload)
		message = "timesheet entry created"
	}
	if !res.OK {
		return SubmitResult{Error: res.Error}
	}

	f.refreshList(ctx)
	return SubmitResult{OK: true, Message: message}
}

// refreshList re-fetches using the window of the last fetch so the list
// view lands on the page the user was on. Refresh failures are the list
// view's problem, not the submission's.
func (f *TimesheetForm) refreshList(ctx context.Context) {
	window := f.target.Pagination()
	if window.Page < 1 {
		window.Page = 1
	}
	if window.Limit < 1 {
		window.Limit = 10
	}
	f.target.FetchMine(ctx, service.TimesheetListQuery{Page: window.Page, Limit: window.Limit})
}

func firstNonEmpty(rec record.Record, keys ...string) string {
	for _, key := range keys {
		if value := rec.String(key); value != "" {
			return value
		}
	}
	return ""
}
