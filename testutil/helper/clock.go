package helper

import (
	"sync"
	"time"
)

// SteppingClock is a deterministic activitylog.Clock for tests.
// Each call to Now returns the current time and then advances it by the configured step.
type SteppingClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewSteppingClock creates a SteppingClock starting at start and advancing by step per call.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{
		current: start,
		step:    step,
	}
}

// Now implements activitylog.Clock.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.current
	c.current = c.current.Add(c.step)

	return now
}

// Peek returns the time the next call to Now will return, without advancing.
func (c *SteppingClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}
