package requests

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Window is a application rate limit, like 20 requests every second.
type Window struct {
	Limit    int
	Interval time.Duration
}

// Single riot rate limiting.
type riotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
// Runs before the adaptive backoff, so a healthy key rarely sees a 429.
type RateLimiter struct {
	windows []*riotLimit
	mu      sync.Mutex
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewRateLimiter creates a limiter, without windows it never waits.
func NewRateLimiter(windows ...Window) *RateLimiter {
	limiter := &RateLimiter{
		now:   time.Now,
		sleep: Sleep,
	}
	for _, w := range windows {
		limiter.windows = append(limiter.windows, &riotLimit{
			limit:         w.Limit,
			resetInterval: w.Interval,
			lastReset:     limiter.now(),
		})
	}
	return limiter
}

// ParseWindows reads a list like "20:1s,100:2m".
func ParseWindows(value string) ([]Window, error) {
	var windows []Window
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		count, interval, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid rate limit window %q", part)
		}
		limit, err := strconv.Atoi(count)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid rate limit count %q", count)
		}
		d, err := time.ParseDuration(interval)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid rate limit interval %q", interval)
		}
		windows = append(windows, Window{Limit: limit, Interval: d})
	}
	return windows, nil
}

// Wait until every window has room for one more request, then take it.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	for {
		wait, ok := r.reserve()
		if ok {
			return nil
		}
		if err := r.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// reserve takes a slot or returns how long until the most limited window resets.
func (r *RateLimiter) reserve() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.resetCounts(now)

	if r.checkLimits() {
		r.incrementCounts()
		return 0, true
	}

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}
		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return waitTime, false
}

// Reset the count of every elapsed window.
func (r *RateLimiter) resetCounts(now time.Time) {
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the windows are on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}
