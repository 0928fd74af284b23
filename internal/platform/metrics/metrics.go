package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts API calls made by the client. Counters are atomic so
// overlapping store actions can record without coordination.
type Collector struct {
	totalCalls      uint64
	failedCalls     uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(ok bool, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalCalls, 1)
	if !ok {
		atomic.AddUint64(&c.failedCalls, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	if c == nil {
		return map[string]any{}
	}
	total := atomic.LoadUint64(&c.totalCalls)
	failed := atomic.LoadUint64(&c.failedCalls)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"callsTotal":      total,
		"failuresTotal":   failed,
		"avgDurationMs":   avg,
		"totalDurationMs": totalMs,
	}
}
