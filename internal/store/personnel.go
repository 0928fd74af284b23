package store

import (
	"context"
	"errors"

	"hrmobile/internal/platform/jobs"
	"hrmobile/internal/record"
	"hrmobile/internal/service"
)

// EmployeeService is the slice of the service layer the personnel store
// consumes.
type EmployeeService interface {
	List(ctx context.Context, q service.EmployeeListQuery) (service.Outcome, error)
	ListDeleted(ctx context.Context, page, limit int) (service.Outcome, error)
	Statistics(ctx context.Context) (service.Outcome, error)
	Me(ctx context.Context) (service.Outcome, error)
	UpdateMe(ctx context.Context, data record.Record) (service.Outcome, error)
	Get(ctx context.Context, id string) (service.Outcome, error)
	Create(ctx context.Context, data record.Record) (service.Outcome, error)
	Update(ctx context.Context, id string, data record.Record) (service.Outcome, error)
	Delete(ctx context.Context, id string) (service.Outcome, error)
	Restore(ctx context.Context, id string) (service.Outcome, error)
	CreateUser(ctx context.Context, employeeID, email, password string) (service.Outcome, error)
}

type PersonnelStore struct {
	status
	svc  EmployeeService
	jobs *jobs.Service

	personnel  []record.Record
	deleted    []record.Record
	current    record.Record
	statistics record.Record
	window     Window
}

func NewPersonnel(svc EmployeeService, background *jobs.Service) *PersonnelStore {
	return &PersonnelStore{
		svc:    svc,
		jobs:   background,
		window: DefaultWindow(),
	}
}

func (s *PersonnelStore) Personnel() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]record.Record(nil), s.personnel...)
}

func (s *PersonnelStore) Deleted() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]record.Record(nil), s.deleted...)
}

func (s *PersonnelStore) Current() record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *PersonnelStore) Statistics() record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statistics
}

func (s *PersonnelStore) Pagination() Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

// FetchList replaces the collection wholesale with the requested page.
func (s *PersonnelStore) FetchList(ctx context.Context, q service.EmployeeListQuery) Result[[]record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.List(ctx, q)
	if msg, ok := s.check(out, err); !ok {
		return failure[[]record.Record](msg)
	}

	data := out.Payload.Unwrap("data")
	employees := record.EnsureIDs(recordsOrValues(data, "employees"))
	window := Window{
		Page:  pageOrDefault(q.Page),
		Limit: limitOrDefault(q.Limit),
		Total: totalFrom(data, len(employees)),
	}

	s.mu.Lock()
	s.personnel = employees
	s.window = window
	s.mu.Unlock()
	return success(employees)
}

func (s *PersonnelStore) FetchDeleted(ctx context.Context, page, limit int) Result[[]record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.ListDeleted(ctx, page, limit)
	if msg, ok := s.check(out, err); !ok {
		return failure[[]record.Record](msg)
	}

	data := out.Payload.Unwrap("data")
	employees := record.EnsureIDs(recordsOrValues(data, "employees"))

	s.mu.Lock()
	s.deleted = employees
	s.mu.Unlock()
	return success(employees)
}

func (s *PersonnelStore) FetchStatistics(ctx context.Context) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Statistics(ctx)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	stats := out.Payload.Child("statistics")
	s.mu.Lock()
	s.statistics = stats
	s.mu.Unlock()
	return success(stats)
}

func (s *PersonnelStore) FetchMe(ctx context.Context) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Me(ctx)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	employee := record.EnsureID(out.Payload.Child("employee"))
	s.mu.Lock()
	s.current = employee
	s.mu.Unlock()
	return success(employee)
}

func (s *PersonnelStore) UpdateMe(ctx context.Context, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.UpdateMe(ctx, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	employee := record.EnsureID(out.Payload.Child("employee"))
	s.mu.Lock()
	s.current = employee
	s.mu.Unlock()
	return success(employee)
}

func (s *PersonnelStore) FetchByID(ctx context.Context, id string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Get(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	employee := record.EnsureID(out.Payload.Child("employee"))
	s.mu.Lock()
	s.current = employee
	s.mu.Unlock()
	return success(employee)
}

// Create prepends the returned record; the pagination window is left
// untouched, callers re-fetch when exact counts matter.
func (s *PersonnelStore) Create(ctx context.Context, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Create(ctx, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	created := record.EnsureID(entityRecord(out.Payload, "employee"))
	s.mu.Lock()
	if created != nil {
		s.personnel = prepend(s.personnel, created)
	}
	s.mu.Unlock()
	s.scheduleStatisticsRefresh()
	return success(created)
}

func (s *PersonnelStore) Update(ctx context.Context, id string, data record.Record) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Update(ctx, id, data)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	updated := record.EnsureID(entityRecord(out.Payload, "employee"))
	s.mu.Lock()
	s.personnel = replaceByID(s.personnel, id, updated)
	s.current = updated
	s.mu.Unlock()
	s.scheduleStatisticsRefresh()
	return success(updated)
}

func (s *PersonnelStore) Delete(ctx context.Context, id string) Result[struct{}] {
	s.begin()
	defer s.end()

	out, err := s.svc.Delete(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[struct{}](msg)
	}

	s.mu.Lock()
	s.personnel = removeByID(s.personnel, id)
	s.mu.Unlock()
	s.scheduleStatisticsRefresh()
	return success(struct{}{})
}

// Restore reverses a soft delete: out of the deleted list, back to the
// front of the active one.
func (s *PersonnelStore) Restore(ctx context.Context, id string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.Restore(ctx, id)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}

	restored := record.EnsureID(entityRecord(out.Payload, "employee"))
	s.mu.Lock()
	s.deleted = removeByID(s.deleted, id)
	if restored != nil {
		s.personnel = prepend(s.personnel, restored)
	}
	s.mu.Unlock()
	s.scheduleStatisticsRefresh()
	return success(restored)
}

func (s *PersonnelStore) CreateUser(ctx context.Context, employeeID, email, password string) Result[record.Record] {
	s.begin()
	defer s.end()

	out, err := s.svc.CreateUser(ctx, employeeID, email, password)
	if msg, ok := s.check(out, err); !ok {
		return failure[record.Record](msg)
	}
	return success(out.Payload.Child("user"))
}

// Clear resets all collections, typically on logout.
func (s *PersonnelStore) Clear() {
	s.mu.Lock()
	s.personnel = nil
	s.deleted = nil
	s.current = nil
	s.statistics = nil
	s.lastErr = ""
	s.window = DefaultWindow()
	s.mu.Unlock()
}

// scheduleStatisticsRefresh triggers a best-effort statistics reload
// after a successful mutation. It never touches the loading flag and its
// failure never reaches the mutating action's caller.
func (s *PersonnelStore) scheduleStatisticsRefresh() {
	if s.jobs == nil {
		return
	}
	s.jobs.Enqueue(jobs.JobStatisticsRefresh, func(ctx context.Context) error {
		out, err := s.svc.Statistics(ctx)
		if err != nil {
			return err
		}
		if !out.Success {
			return errors.New(out.Error)
		}
		s.mu.Lock()
		s.statistics = out.Payload.Child("statistics")
		s.mu.Unlock()
		return nil
	})
}

// entityRecord unwraps the backend habit of nesting the entity under its
// own key once or twice (payload.employee.employee on some builds).
func entityRecord(payload record.Record, key string) record.Record {
	entity := payload.Child(key)
	if entity == nil {
		return nil
	}
	return entity.Unwrap(key)
}

func pageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func limitOrDefault(limit int) int {
	if limit < 1 {
		return 10
	}
	return limit
}
