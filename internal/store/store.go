// Package store holds the client-side state for each entity kind. A
// store's collection mirrors server truth: records enter it only after a
// successful remote call, and every action returns a Result instead of
// an error so callers always get exactly one outcome per operation.
package store

import (
	"sync"

	"hrmobile/internal/service"
)

// Result is the uniform outcome of a store action.
type Result[T any] struct {
	OK    bool
	Error string
	Value T
}

func success[T any](value T) Result[T] {
	return Result[T]{OK: true, Value: value}
}

func failure[T any](message string) Result[T] {
	return Result[T]{Error: message}
}

// Window describes the most recently fetched page. It is a slice
// descriptor, not a cursor: fetching a page replaces the collection.
type Window struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func DefaultWindow() Window {
	return Window{Page: 1, Limit: 10, Total: 0}
}

// status carries the per-store loading flag and last error. The loading
// flag is raised when an action starts and is always lowered when it
// exits, whatever the outcome.
type status struct {
	mu      sync.RWMutex
	loading bool
	lastErr string
}

func (s *status) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

// end lowers the loading flag. Actions call it via defer so no exit
// path, including a panicking service call, leaves the flag stuck.
func (s *status) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *status) setErr(message string) {
	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()
}

// check folds the two failure kinds into one message: a transport error
// and a service-reported failure are handled identically from here on.
func (s *status) check(out service.Outcome, err error) (string, bool) {
	if err != nil {
		s.setErr(err.Error())
		return err.Error(), false
	}
	if !out.Success {
		s.setErr(out.Error)
		return out.Error, false
	}
	return "", true
}

func (s *status) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *status) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
