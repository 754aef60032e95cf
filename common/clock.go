package common

import (
	"sync"
	"time"
)

// Clock is the time source every timed system reads. The game drives a
// FrameClock; tests drive a ManualClock.
type Clock interface {
	Now() time.Time
}

// FrameClock advances by a fixed step each tick so timing is a pure
// function of the number of updates.
type FrameClock struct {
	now  time.Time
	step time.Duration
}

func NewFrameClock(start time.Time, tps int) *FrameClock {
	if tps <= 0 {
		tps = 60
	}
	return &FrameClock{now: start, step: time.Second / time.Duration(tps)}
}

func (c *FrameClock) Now() time.Time {
	return c.now
}

// Tick advances the clock by one frame.
func (c *FrameClock) Tick() {
	c.now = c.now.Add(c.step)
}

func (c *FrameClock) Step() time.Duration {
	return c.step
}

type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
