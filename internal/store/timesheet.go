package store

import (
	"context"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
)

type TimesheetService interface {
	ListMine(ctx context.Context, q service.TimesheetListQuery) (service.Outcome, error)
	Create(ctx context.Context, data record.Record) (service.Outcome, error)
	Update(ctx context.Context, id string, data record.Record) (service.Outcome, error)
	Delete(ctx context.Context, id string) (service.Outcome, error)
}

type TimesheetStore struct {
	status
	svc TimesheetService

	timesheets []record.Record
	window     Window
}

func NewTimesheet(svc TimesheetService) *TimesheetStore {
	return &TimesheetStore{svc: svc, window: DefaultWindow()}
}

func (s *TimesheetStore) Timesheets() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]record.Record(nil), s.timesheets...)
}

func (s *TimesheetStore) Pagination() Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

func (s *TimesheetStore) FetchMine(ctx context.Context, q service.TimesheetListQuery) Result[[]record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.ListMine(ctx, q)
	if msg, ok := s.check(out, err); !ok {
		return failure[[]record.Record](msg)
	}

	data := out.Payload.Unwrap("data")
	timesheets := record.EnsureIDs(timesheetSlice(out.Payload, data))
	window := Window{
		Page:  pageOrDefault(q.Page),
		Limit: limitOrDefault(q.Limit),
		Total: totalFrom(data, len(timesheets)),
	}

	s.mu.Lock()
	s.timesheets = timesheets
	s.window = window
	s.mu.Unlock()
	return success(timesheets)
}

func (s *TimesheetStore) Create(ctx context.Context, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Create(ctx, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	created := record.EnsureID(entityRecord(out.Payload, "timesheet"))
	s.mu.Lock()
	if created != nil {
		s.timesheets = prepend(s.timesheets, created)
	}
	s.mu.Unlock()
	return success(created)
}

func (s *TimesheetStore) Update(ctx context.Context, id string, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Update(ctx, id, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	updated := record.EnsureID(entityRecord(out.Payload, "timesheet"))
	s.mu.Lock()
	s.timesheets = replaceByID(s.timesheets, id, updated)
	s.mu.Unlock()
	return success(updated)
}

func (s *TimesheetStore) Delete(ctx context.Context, id string) Result[struct{}] {
	s.begin()
	defer s.end()

	out, err := s.svc.Delete(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[struct{}](msg)
	}

	s.mu.Lock()
	s.timesheets = removeByID(s.timesheets, id)
	s.mu.Unlock()
	return success(struct{}{})
}

func (s *TimesheetStore) Clear() {
	s.mu.Lock()
	s.timesheets = nil
	s.lastErr = ""
	s.window = DefaultWindow()
	s.mu.Unlock()
}

// timesheetSlice handles every list shape this endpoint has been seen
// returning: the slice as the data payload itself, or nested under
// timesheets, items, or records.
func timesheetSlice(payload, data record.Record) []record.Record {
	if recs := payload.Records("data"); recs != nil {
		return recs
	}
	for _, key := range []string{"timesheets", "items", "records"} {
		if recs := data.Records(key); recs != nil {
			return recs
		}
	}
	return []record.Record{}
}
