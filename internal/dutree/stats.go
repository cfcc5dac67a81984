package dutree

import (
	"sync"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Stats summarizes a build.
type Stats struct {
	// Entries is the number of paths visited, including measured descendants.
	Entries int64
	// TotalBytes is the size of the resulting root entry.
	TotalBytes uint64
	// ErrorCount is the number of paths that could not be read.
	ErrorCount int64
	// Elapsed is the time taken by the build.
	Elapsed time.Duration
}

// collector counts visited paths and errors and reports progress. fastwalk
// invokes its callback from a worker goroutine, so access is guarded.
type collector struct {
	mu         sync.Mutex
	entries    int64
	bytes      uint64
	errorCount int64

	progress   func(entries int64, bytes uint64)
	interval   time.Duration
	lastReport time.Time
}

// newCollector creates a collector calling hook at most once per interval.
func newCollector(hook func(int64, uint64), interval time.Duration) *collector {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	return &collector{
		progress:   hook,
		interval:   interval,
		lastReport: time.Now(),
	}
}

// addEntry records a visited path contributing bytes on its own. The progress
// hook runs on the calling goroutine, outside the lock.
func (c *collector) addEntry(bytes uint64) {
	c.mu.Lock()

	c.entries++
	c.bytes += bytes

	report := c.progress != nil && time.Since(c.lastReport) >= c.interval
	if report {
		c.lastReport = time.Now()
	}

	entries, total := c.entries, c.bytes

	c.mu.Unlock()

	if report {
		c.progress(entries, total)
	}
}

// addError increments the error counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// finalize produces Stats for a finished build.
func (c *collector) finalize(root Entry, start time.Time) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Entries:    c.entries,
		TotalBytes: root.Size,
		ErrorCount: c.errorCount,
		Elapsed:    time.Since(start),
	}
}
