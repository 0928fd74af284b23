package store

import (
	"context"

	"hrmobile/internal/record"
	"hrmobile/internal/service"
)

type AdvanceService interface {
	ListMine(ctx context.Context, q service.AdvanceListQuery) (service.Outcome, error)
	Statistics(ctx context.Context, year string) (service.Outcome, error)
	Get(ctx context.Context, id string) (service.Outcome, error)
	Create(ctx context.Context, data record.Record) (service.Outcome, error)
	Update(ctx context.Context, id string, data record.Record) (service.Outcome, error)
	Delete(ctx context.Context, id string) (service.Outcome, error)
	ListForEmployee(ctx context.Context, employeeID string, q service.AdvanceListQuery) (service.Outcome, error)
	Approve(ctx context.Context, employeeID, advanceID, status, note string) (service.Outcome, error)
}

type AdvanceStore struct {
	status
	svc AdvanceService

	advances []record.Record
	window   Window
}

func NewAdvance(svc AdvanceService) *AdvanceStore {
	return &AdvanceStore{svc: svc, window: DefaultWindow()}
}

func (s *AdvanceStore) Advances() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]record.Record(nil), s.advances...)
}

func (s *AdvanceStore) Pagination() Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

func (s *AdvanceStore) FetchMine(ctx context.Context, q service.AdvanceListQuery) Result[[]record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.ListMine(ctx, q)
	if msg, ok := s.check(out, err); !ok {
		return failure[[]record.Record](msg)
	}

	data := out.Payload.Unwrap("data")
	advances := record.EnsureIDs(recordsOrValues(data, "advances"))
	window := Window{
		Page:  pageOrDefault(q.Page),
		Limit: limitOrDefault(q.Limit),
		Total: totalFrom(data, len(advances)),
	}

	s.mu.Lock()
	s.advances = advances
	s.window = window
	s.mu.Unlock()
	return success(advances)
}

func (s *AdvanceStore) FetchStatistics(ctx context.Context, year string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Statistics(ctx, year)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Unwrap("data"))
}

func (s *AdvanceStore) FetchByID(ctx context.Context, id string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Get(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(record.EnsureID(out.Payload.Unwrap("data").Unwrap("advance")))
}

func (s *AdvanceStore) Create(ctx context.Context, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Create(ctx, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	created := record.EnsureID(entityRecord(out.Payload, "advance"))
	s.mu.Lock()
	if created != nil {
		s.advances = prepend(s.advances, created)
	}
	s.mu.Unlock()
	return success(created)
}

func (s *AdvanceStore) Update(ctx context.Context, id string, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Update(ctx, id, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	updated := record.EnsureID(entityRecord(out.Payload, "advance"))
	s.mu.Lock()
	s.advances = replaceByID(s.advances, id, updated)
	s.mu.Unlock()
	return success(updated)
}

func (s *AdvanceStore) Delete(ctx context.Context, id string) Result[struct{}] {
	s.begin()
	defer s.end()

	out, err := s.svc.Delete(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[struct{}](msg)
	}

	s.mu.Lock()
	s.advances = removeByID(s.advances, id)
	s.mu.Unlock()
	return success(struct{}{})
}

func (s *AdvanceStore) FetchForEmployee(ctx context.Context, employeeID string, q service.AdvanceListQuery) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.ListForEmployee(ctx, employeeID, q)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Unwrap("data"))
}

func (s *AdvanceStore) Approve(ctx context.Context, employeeID, advanceID, decision, note string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Approve(ctx, employeeID, advanceID, decision, note)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Unwrap("data"))
}

func (s *AdvanceStore) Clear() {
	s.mu.Lock()
	s.advances = nil
	s.lastErr = ""
	s.window = DefaultWindow()
	s.mu.Unlock()
}
