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

type AdvanceInput struct {
	Amount string `validate:"required,amount"`
	Reason string `validate:"required"`
}

var advanceMessages = map[string]string{
	"amount:required": "amount is required",
	"amount:amount":   "amount must be a positive number",
	"reason:required": "reason is required",
}

type AdvanceTarget interface {
	Create(ctx context.Context, data record.Record) store.Result[record.Record]
	Update(ctx context.Context, id string, data record.Record) store.Result[record.Record]
	FetchMine(ctx context.Context, q service.AdvanceListQuery) store.Result[[]record.Record]
	Pagination() store.Window
}

type AdvanceForm struct {
	target   AdvanceTarget
	editID   string
	validate *validator.Validate
}

func NewAdvanceForm(target AdvanceTarget, editTarget record.Record) *AdvanceForm {
	return &AdvanceForm{
		target:   target,
		editID:   record.EnsureID(editTarget).ID(),
		validate: newValidator(),
	}
}

func (f *AdvanceForm) Editing() bool {
	return f.editID != ""
}

func (f *AdvanceForm) Prefill(rec record.Record) AdvanceInput {
	if rec == nil {
		return AdvanceInput{}
	}
	return AdvanceInput{
		Amount: rec.String("amount"),
		Reason: firstNonEmpty(rec, "reason", "description"),
	}
}

func (f *AdvanceForm) Validate(input AdvanceInput) map[string]string {
	return fieldErrors(f.validate.Struct(input), advanceMessages)
}

func (f *AdvanceForm) Submit(ctx context.Context, input AdvanceInput) SubmitResult {
	if issues := f.Validate(input); len(issues) > 0 {
		return SubmitResult{FieldErrors: issues}
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	payload := record.Record{
		"amount": amount,
		"reason": strings.TrimSpace(input.Reason),
	}

	var (
		res     store.Result[record.Record]
		message string
	)
	if f.editID != "" {
		res = f.target.Update(ctx, f.editID, payload)
		message = "advance request updated"
	} else {
		res = f.target.Create(ctx, payload)
		message = "advance request created"
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
	f.target.FetchMine(ctx, service.AdvanceListQuery{Page: window.Page, Limit: window.Limit})
	return SubmitResult{OK: true, Message: message}
}
