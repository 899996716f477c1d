// Package anim drives the rotation of the model with a fixed-period step
// counter.
package anim

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultMaxStep is the number of steps in one full revolution.
	DefaultMaxStep = 300
	// DefaultInterval is the time between steps.
	DefaultInterval = 15 * time.Millisecond
)

// Clock advances a step counter once per interval, wrapping after maxStep
// back to 0. One goroutine writes the counter; any number may read it.
type Clock struct {
	step     atomic.Int64
	maxStep  int64
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClock creates a stopped clock at step 0. maxStep is clamped to at
// least 1 and a non-positive interval selects DefaultInterval.
func NewClock(maxStep int, interval time.Duration) *Clock {
	if maxStep < 1 {
		maxStep = 1
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Clock{
		maxStep:  int64(maxStep),
		interval: interval,
	}
}

// Tick advances the counter by one, wrapping to 0 after maxStep, and
// returns the new step.
func (c *Clock) Tick() int {
	for {
		old := c.step.Load()
		next := (old + 1) % (c.maxStep + 1)
		if c.step.CompareAndSwap(old, next) {
			return int(next)
		}
	}
}

// Step returns the current step in [0, maxStep].
func (c *Clock) Step() int {
	return int(c.step.Load())
}

// SetStep moves the counter to step modulo maxStep+1.
func (c *Clock) SetStep(step int) {
	n := int64(step) % (c.maxStep + 1)
	if n < 0 {
		n += c.maxStep + 1
	}
	c.step.Store(n)
}

// MaxStep returns the last step before the counter wraps.
func (c *Clock) MaxStep() int {
	return int(c.maxStep)
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Angle returns the rotation for the current step in radians:
// step/maxStep of a full turn.
func (c *Clock) Angle() float64 {
	return AngleAt(c.Step(), c.MaxStep())
}

// AngleAt returns the rotation in radians for step out of maxStep.
func AngleAt(step, maxStep int) float64 {
	return float64(step) / float64(maxStep) * 2 * math.Pi
}

// Run ticks once per interval until ctx is done. It always returns
// ctx.Err().
func (c *Clock) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Start runs the clock in a new goroutine. Calling Start on a running
// clock does nothing.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		_ = c.Run(ctx)
	}(c.done)
}

// Stop halts a running clock and waits for its goroutine to exit. The step
// is kept, so a later Start resumes from it.
func (c *Clock) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if done == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the clock goroutine is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done != nil
}
