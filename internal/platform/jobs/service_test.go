package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEnqueueRuns(t *testing.T) {
	svc := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	done := make(chan struct{})
	svc.Enqueue(JobStatisticsRefresh, func(context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueued job never ran")
	}
}

func TestFailuresAreSwallowed(t *testing.T) {
	svc := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	ran := make(chan struct{})
	svc.Enqueue(JobStatisticsRefresh, func(context.Context) error {
		return errors.New("backend down")
	})
	svc.Enqueue(JobStatisticsRefresh, func(context.Context) error {
		close(ran)
		return nil
	})

	// The failing job must not stop the worker.
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped after a failing job")
	}
}
