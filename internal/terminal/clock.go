package terminal

import (
	"math/rand"
	"sync"
	"time"
)

// Clock provides the timers the session suspends on.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock uses wall-clock timers.
type RealClock struct{}

func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// VirtualClock fires every timer immediately and advances its own notion of
// time by the requested duration. Playback against it takes no wall time.
type VirtualClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	waits int
}

func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{start: start, now: start}
}

func (c *VirtualClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.waits++
	now := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Elapsed is the total virtual time spent waiting.
func (c *VirtualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.start)
}

// Waits counts timers handed out so far.
func (c *VirtualClock) Waits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waits
}

// DelayFunc turns a step's base per-character delay into the actual wait.
type DelayFunc func(base time.Duration) time.Duration

// NoJitter waits exactly the base delay.
func NoJitter(base time.Duration) time.Duration { return base }

// Jitter adds a uniformly random [0, max) component to the base delay.
func Jitter(max time.Duration) DelayFunc {
	if max <= 0 {
		return NoJitter
	}
	return func(base time.Duration) time.Duration {
		return base + time.Duration(rand.Int63n(int64(max)))
	}
}
