package requests

import (
	"context"
	"sync"
	"time"
)

// Throttle spaces requests by a minimum interval across every goroutine sharing it.
// Each Wait reserves the next free slot on the clock before sleeping.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewThrottle creates a throttle, a interval <= 0 disables it.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		now:      time.Now,
		sleep:    Sleep,
	}
}

// Wait blocks until the reserved slot.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return nil
	}

	t.mu.Lock()
	now := t.now()
	at := t.next
	if at.Before(now) {
		at = now
	}
	t.next = at.Add(t.interval)
	t.mu.Unlock()

	if wait := at.Sub(now); wait > 0 {
		return t.sleep(ctx, wait)
	}
	return nil
}

// Sleep waits for the duration or until the context is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
