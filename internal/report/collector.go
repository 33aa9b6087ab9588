package report

import (
	"sync"
	"time"
)

// Recorder receives failure records.
type Recorder interface {
	Record(rec FailureRecord)
}

// Collector is the append-only failure list of one run.
// It is safe for concurrent use so parallel invitation workers can share it.
type Collector struct {
	mu      sync.Mutex
	records []FailureRecord
	now     func() time.Time
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{now: time.Now}
}

// Record appends rec, stamping it with the current time if unset.
func (c *Collector) Record(rec FailureRecord) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = c.now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// Records returns a copy of all records in the order they were appended.
func (c *Collector) Records() []FailureRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]FailureRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Empty reports whether nothing has failed so far.
func (c *Collector) Empty() bool {
	return c.Len() == 0
}

// ByTag returns the records carrying the given classification tag.
func (c *Collector) ByTag(tag string) []FailureRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []FailureRecord
	for _, r := range c.records {
		if r.Tag == tag {
			out = append(out, r)
		}
	}
	return out
}
