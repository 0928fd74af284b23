package form

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
	"hrmobile/internal/store"
)

type LeaveInput struct {
	Type      string `validate:"required"`
	StartDate string `validate:"required,dateymd"`
	EndDate   string `validate:"required,dateymd"`
	Reason    string
}

var leaveMessages = map[string]string{
	"type:required":      "leave type is required",
	"startDate:required": "start date is required",
	"startDate:dateymd":  "date must be in YYYY-MM-DD format",
	"endDate:required":   "end date is required",
	"endDate:dateymd":    "date must be in YYYY-MM-DD format",
	"endDate:dateorder":  "end date must be on or after start date",
}

// leaveDateOrder allows single-day leaves, so only strictly earlier end
// dates are rejected.
func leaveDateOrder(sl validator.StructLevel) {
	input := sl.Current().Interface().(LeaveInput)
	if !datePattern.MatchString(input.StartDate) || !datePattern.MatchString(input.EndDate) {
		return
	}
	if input.EndDate < input.StartDate {
		sl.ReportError(input.EndDate, "EndDate", "EndDate", "dateorder", "")
	}
}

type LeaveTarget interface {
	Create(ctx context.Context, data record.Record) store.Result[record.Record]
	Update(ctx context.Context, id string, data record.Record) store.Result[record.Record]
	FetchMine(ctx context.Context, q service.LeaveListQuery) store.Result[[]record.Record]
	Pagination() store.Window
}

type LeaveForm struct {
	target   LeaveTarget
	editID   string
	validate *validator.Validate
}

func NewLeaveForm(target LeaveTarget, editTarget record.Record) *LeaveForm {
	return &LeaveForm{
		target:   target,
		editID:   record.EnsureID(editTarget).ID(),
		validate: newValidator(),
	}
}

func (f *LeaveForm) Editing() bool {
	return f.editID != ""
}

func (f *LeaveForm) Prefill(rec record.Record) LeaveInput {
	if rec == nil {
		return LeaveInput{}
	}
	return LeaveInput{
		Type:      firstNonEmpty(rec, "type", "leaveType"),
		StartDate: NormalizeDate(rec.String("startDate")),
		EndDate:   NormalizeDate(rec.String("endDate")),
		Reason:    firstNonEmpty(rec, "reason", "description"),
	}
}

func (f *LeaveForm) Validate(input LeaveInput) map[string]string {
	return fieldErrors(f.validate.Struct(input), leaveMessages)
}

func (f *LeaveForm) Submit(ctx context.Context, input LeaveInput) SubmitResult {
	if issues := f.Validate(input); len(issues) > 0 {
		return SubmitResult{FieldErrors: issues}
	}

	payload := record.Record{
		"type":      input.Type,
		"startDate": input.StartDate,
		"endDate":   input.EndDate,
	}
	if reason := strings.TrimSpace(input.Reason); reason != "" {
		payload["reason"] = reason
	}

	var (
		res     store.Result[record.Record]
		message string
	)
	if f.editID != "" {
		res = f.target.Update(ctx, f.editID, payload)
		message = "leave request updated"
	} else {
		res = f.target.Create(ctx, payload)
		message = "leave request created"
	}
	if !res.OK {
		return SubmitResult{Error: res.Error}
	}

	window := f.target.Pagination()
	if window.Page < 1 {
		window.Page = 1
	}
	if window.Limit < 1 {
		window.Limit = 10
	}
	f.target.FetchMine(ctx, service.LeaveListQuery{Page: window.Page, Limit: window.Limit})
	return SubmitResult{OK: true, Message: message}
}
