// Package jobs runs fire-and-forget client-side work, such as the
// statistics refresh triggered after personnel mutations. Failures are
// logged and never reach the caller.
package jobs

import (
	"context"
	"log/slog"
)

const JobStatisticsRefresh = "statistics_refresh"

type Service struct {
	queue chan job
}

type job struct {
	Type string
	Run  func(context.Context) error
}

func New() *Service {
	return &Service{queue: make(chan job, 128)}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

// Enqueue submits work without waiting for it. A full queue drops the
// job with a warning rather than blocking the submitting action.
func (s *Service) Enqueue(jobType string, run func(context.Context) error) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if err := j.Run(ctx); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}
