package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a token-bucket rate limiter for outbound provider calls.
// Capacity and refill rate are fixed at construction; a zero refill rate
// disables limiting entirely.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// New creates a limiter holding up to capacity tokens, refilled at
// refillPerSec tokens per second.
func New(capacity, refillPerSec float64) *Limiter {
	return &Limiter{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: refillPerSec,
		last:       time.Now(),
	}
}

// Allow reports whether one token can be consumed right now.
func (l *Limiter) Allow() bool {
	if l == nil || l.refillRate <= 0 {
		return true
	}

	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := now.Sub(l.last).Seconds()
	if elapsed > 0 {
		l.tokens += elapsed * l.refillRate
		if l.tokens > l.capacity {
			l.tokens = l.capacity
		}
		l.last = now
	}

	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}
