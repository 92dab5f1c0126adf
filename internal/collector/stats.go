// internal/collector/stats.go
package collector

import (
	"sync"

	"reddit-radar/internal/models"
)

// RunCounters accumulates telemetry for one collection run. Create a fresh
// instance per run and share it between the rate limiter and every collector
// participating in that run.
type RunCounters struct {
	mu                sync.Mutex
	totalRequests     int
	commentRequests   int
	failedRequests    int
	commentsCollected int
	commentsSkipped   int
}

func NewRunCounters() *RunCounters {
	return &RunCounters{}
}

func (c *RunCounters) addRequest(comment bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalRequests++
	if comment {
		c.commentRequests++
	}
}

func (c *RunCounters) addFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failedRequests++
}

func (c *RunCounters) addCollected(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.commentsCollected += n
}

func (c *RunCounters) addSkipped(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.commentsSkipped += n
}

// Snapshot returns the current counter values without mutating anything.
// The success rate divides by max(total, 1) so an empty run reports 0/1.
func (c *RunCounters) Snapshot() models.RunStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	denom := c.totalRequests
	if denom < 1 {
		denom = 1
	}

	return models.RunStats{
		TotalRequests:     c.totalRequests,
		CommentRequests:   c.commentRequests,
		FailedRequests:    c.failedRequests,
		CommentsCollected: c.commentsCollected,
		CommentsSkipped:   c.commentsSkipped,
		SuccessRate:       float64(c.totalRequests-c.failedRequests) / float64(denom),
	}
}
