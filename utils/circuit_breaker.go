package utils

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned without invoking the wrapped call.
var ErrBreakerOpen = errors.New("circuit breaker is open")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerHalfOpen
	BreakerOpen
)

// CircuitBreaker sheds calls to a failing dependency. The publish path
// is best-effort, so once the failure ratio trips, callers fail fast for
// a cooldown period instead of stacking up on timeouts.
type CircuitBreaker struct {
	name      string
	window    time.Duration // closed-state counting window
	cooldown  time.Duration // how long to stay open before probing
	minVolume uint32        // calls required before the ratio can trip
	tripRatio float64

	mu       sync.Mutex
	state    BreakerState
	requests uint32
	failures uint32
	resetAt  time.Time
}

func NewCircuitBreaker(name string) *CircuitBreaker {
	return &CircuitBreaker{
		name:      name,
		window:    time.Minute,
		cooldown:  30 * time.Second,
		minVolume: 10,
		tripRatio: 0.6,
		state:     BreakerClosed,
	}
}

// Execute runs fn unless the breaker is open. ctx is passed through
// untouched; fn is expected to honor it.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() (any, error)) (any, error) {
	if err := cb.before(); err != nil {
		return nil, err
	}

	result, err := fn()
	cb.after(err == nil)
	return result, err
}

// State reports the breaker's current state, rolling expired windows
// first.
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.refresh(time.Now())
	return cb.state
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.refresh(time.Now())

	if cb.state == BreakerOpen {
		return ErrBreakerOpen
	}
	cb.requests++
	return nil
}

func (cb *CircuitBreaker) after(success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if success {
		if cb.state == BreakerHalfOpen {
			cb.reset(BreakerClosed, time.Now())
		}
		return
	}

	cb.failures++
	// A half-open probe failing reopens immediately; a closed breaker
	// waits for enough volume before the ratio can trip it.
	if cb.state == BreakerHalfOpen || cb.tripped() {
		cb.state = BreakerOpen
		cb.resetAt = time.Now().Add(cb.cooldown)
	}
}

func (cb *CircuitBreaker) tripped() bool {
	return cb.requests >= cb.minVolume &&
		float64(cb.failures)/float64(cb.requests) >= cb.tripRatio
}

// refresh rolls the counting window in closed state and moves an expired
// open breaker to half-open so a probe call can go through.
func (cb *CircuitBreaker) refresh(now time.Time) {
	switch cb.state {
	case BreakerClosed:
		if !cb.resetAt.IsZero() && cb.resetAt.Before(now) {
			cb.reset(BreakerClosed, now)
		}
	case BreakerOpen:
		if cb.resetAt.Before(now) {
			cb.reset(BreakerHalfOpen, now)
		}
	}
}

func (cb *CircuitBreaker) reset(state BreakerState, now time.Time) {
	cb.state = state
	cb.requests = 0
	cb.failures = 0

	if state == BreakerClosed {
		cb.resetAt = now.Add(cb.window)
	} else {
		cb.resetAt = time.Time{}
	}
}
