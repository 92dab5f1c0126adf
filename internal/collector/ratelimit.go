// internal/collector/ratelimit.go
package collector

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultListingDelay = 1 * time.Second
	DefaultCommentDelay = 1500 * time.Millisecond
)

// RateLimiter enforces a minimum spacing between API requests. Listing and
// comment-tree requests carry separate minimums, with comment trees spaced
// wider because their payloads are heavier. The mutex is held through the
// wait, so concurrent callers serialize and the spacing holds across
// goroutines sharing one limiter.
type RateLimiter struct {
	mu           sync.Mutex
	lastRequest  time.Time
	listingDelay time.Duration
	commentDelay time.Duration
	counters     *RunCounters
}

func NewRateLimiter(listingDelay, commentDelay time.Duration, counters *RunCounters) *RateLimiter {
	if listingDelay <= 0 {
		listingDelay = DefaultListingDelay
	}
	if commentDelay <= 0 {
		commentDelay = DefaultCommentDelay
	}

	return &RateLimiter{
		listingDelay: listingDelay,
		commentDelay: commentDelay,
		counters:     counters,
	}
}

// AwaitTurn blocks until the class's minimum spacing since the last granted
// request has elapsed, never waiting when it already has. On a grant it
// stamps the request time and updates the run counters. A canceled context
// aborts the wait and returns the context error without recording a grant.
func (r *RateLimiter) AwaitTurn(ctx context.Context, comment bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	minSpacing := r.listingDelay
	if comment {
		minSpacing = r.commentDelay
	}

	if !r.lastRequest.IsZero() {
		if wait := minSpacing - time.Since(r.lastRequest); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	r.lastRequest = time.Now()
	r.counters.addRequest(comment)

	return nil
}
