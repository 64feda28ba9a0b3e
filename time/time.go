// Package time provides clocks, so that code depending on the current time can be tested with a fixed time.
package time

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// SystemClock returns the current system time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same time until it is set or advanced.
// Safe for concurrent use.
type FixedClock struct {
	mutex sync.Mutex
	t     time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.t
}

func (c *FixedClock) Set(t time.Time) {
	c.mutex.Lock()
	c.t = t
	c.mutex.Unlock()
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mutex.Lock()
	c.t = c.t.Add(d)
	c.mutex.Unlock()
}

// ClockOrDefault returns c or a SystemClock if c is nil.
func ClockOrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}

func AddDurationToUnixNano(t int64, add time.Duration) int64 {
	return time.Unix(0, t).Add(add).UnixNano()
}
