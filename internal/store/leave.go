package store

import (
	"context"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
)

type LeaveService interface {
	ListMine(ctx context.Context, q service.LeaveListQuery) (service.Outcome, error)
	Statistics(ctx context.Context, year string) (service.Outcome, error)
	Get(ctx context.Context, id string) (service.Outcome, error)
	Create(ctx context.Context, data record.Record) (service.Outcome, error)
	Update(ctx context.Context, id string, data record.Record) (service.Outcome, error)
	Delete(ctx context.Context, id string) (service.Outcome, error)
	ListForEmployee(ctx context.Context, employeeID string, q service.LeaveListQuery) (service.Outcome, error)
	Approve(ctx context.Context, employeeID, leaveID, status, note string) (service.Outcome, error)
}

type LeaveStore struct {
	status
	svc LeaveService

	leaves []record.Record
	window Window
}

func NewLeave(svc LeaveService) *LeaveStore {
	return &LeaveStore{svc: svc, window: DefaultWindow()}
}

func (s *LeaveStore) Leaves() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]record.Record(nil), s.leaves...)
}

func (s *LeaveStore) Pagination() Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

func (s *LeaveStore) FetchMine(ctx context.Context, q service.LeaveListQuery) Result[[]record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.ListMine(ctx, q)
	if msg, ok := s.check(out, err); !ok {
		return failure[[]record.Record](msg)
	}

	data := out.Payload.Unwrap("data")
	leaves := record.EnsureIDs(recordsOrValues(data, "leaves"))
	window := Window{
		Page:  pageOrDefault(q.Page),
		Limit: limitOrDefault(q.Limit),
		Total: totalFrom(data, len(leaves)),
	}

	s.mu.Lock()
	s.leaves = leaves
	s.window = window
	s.mu.Unlock()
	return success(leaves)
}

// FetchStatistics returns the yearly summary without touching the
// collection.
func (s *LeaveStore) FetchStatistics(ctx context.Context, year string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Statistics(ctx, year)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Unwrap("data"))
}

func (s *LeaveStore) FetchByID(ctx context.Context, id string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Get(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(record.EnsureID(out.Payload.Unwrap("data").Unwrap("leave")))
}

func (s *LeaveStore) Create(ctx context.Context, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Create(ctx, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	created := record.EnsureID(entityRecord(out.Payload, "leave"))
	s.mu.Lock()
	if created != nil {
		s.leaves = prepend(s.leaves, created)
	}
	s.mu.Unlock()
	return success(created)
}

func (s *LeaveStore) Update(ctx context.Context, id string, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Update(ctx, id, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	updated := record.EnsureID(entityRecord(out.Payload, "leave"))
	s.mu.Lock()
	s.leaves = replaceByID(s.leaves, id, updated)
	s.mu.Unlock()
	return success(updated)
}

func (s *LeaveStore) Delete(ctx context.Context, id string) Result[struct{}] {
	s.begin()
	defer s.end()

	out, err := s.svc.Delete(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[struct{}](msg)
	}

	s.mu.Lock()
	s.leaves = removeByID(s.leaves, id)
	s.mu.Unlock()
	return success(struct{}{})
}

// FetchForEmployee is the manager view; it does not replace the
// caller-owned collection.
func (s *LeaveStore) FetchForEmployee(ctx context.Context, employeeID string, q service.LeaveListQuery) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.ListForEmployee(ctx, employeeID, q)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Unwrap("data"))
}

func (s *LeaveStore) Approve(ctx context.Context, employeeID, leaveID, decision, note string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Approve(ctx, employeeID, leaveID, decision, note)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Unwrap("data"))
}

func (s *LeaveStore) Clear() {
	s.mu.Lock()
	s.leaves = nil
	s.lastErr = ""
	s.window = DefaultWindow()
	s.mu.Unlock()
}
