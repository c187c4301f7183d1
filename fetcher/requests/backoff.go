package requests

import (
	"sync"
	"time"
)

// Backoff limits.
const (
	minBackoff = 500 * time.Millisecond
	maxBackoff = 8000 * time.Millisecond
)

// Backoff is the adaptive delay shared by every request of a client.
// It grows on 429 responses and decays on each success.
type Backoff struct {
	mu      sync.Mutex
	current time.Duration
}

// Current delay.
func (b *Backoff) Current() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Raise makes the delay at least the suggested one and returns it.
func (b *Backoff) Raise(suggested time.Duration) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if suggested > b.current {
		b.current = suggested
	}
	return b.current
}

// Escalate doubles the delay, starting at 500ms and capped at 8s.
func (b *Backoff) Escalate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.current * 2
	if next == 0 {
		next = minBackoff
	}
	b.current = min(next, maxBackoff)
}

// Relax halves the delay, truncated to whole milliseconds.
func (b *Backoff) Relax() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = (b.current / 2).Truncate(time.Millisecond)
}
