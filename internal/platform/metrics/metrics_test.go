package metrics

import (
	"testing"
	"time"
)

func TestCollector(t *testing.T) {
	c := New()
	c.Record(true, 100*time.Millisecond)
	c.Record(false, 300*time.Millisecond)

	snap := c.Snapshot()
	if snap["callsTotal"] != uint64(2) || snap["failuresTotal"] != uint64(1) {
		t.Fatalf("unexpected counters %v", snap)
	}
	if snap["avgDurationMs"] != float64(200) {
		t.Fatalf("unexpected average %v", snap["avgDurationMs"])
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.Record(true, time.Second) // must not panic
	if len(c.Snapshot()) != 0 {
		t.Fatal("nil collector must snapshot empty")
	}
}
