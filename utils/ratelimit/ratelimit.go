package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	remaining   int
	windowStart time.Time
}

// Limiter is a per-key fixed-window token bucket. Each key gets
// capacity tokens per window; the bucket is fully replenished when a
// new window starts. Requests beyond capacity are rejected immediately,
// never queued. Idle buckets are evicted by a janitor so memory stays
// bounded by the set of recently active keys.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	capacity int
	window   time.Duration
	done     chan struct{}
	now      func() time.Time
}

func New(capacity int, window time.Duration) *Limiter {
	l := &Limiter{
		buckets:  make(map[string]*bucket),
		capacity: capacity,
		window:   window,
		done:     make(chan struct{}),
		now:      time.Now,
	}
	go l.janitor()
	return l
}

// Allow takes one token for key, starting a fresh window if the
// previous one has elapsed. It returns false when the key has exhausted
// its capacity inside the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets[key] = &bucket{remaining: l.capacity - 1, windowStart: now}
		return true
	}
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Stop terminates the janitor goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) janitor() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

// evictIdle drops buckets whose window ended more than one full window
// ago; they would be reset on next use anyway.
func (l *Limiter) evictIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-2 * l.window)
	for key, b := range l.buckets {
		if b.windowStart.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
