package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddDurationToUnixNano(t *testing.T) {
	a := assert.New(t)

	now := SystemClock{}.Now().UnixNano()
	x := AddDurationToUnixNano(now, 42*time.Nanosecond)
	a.Equal(now+42, x)

	y := AddDurationToUnixNano(now, 42*time.Second)
	a.Equal(now+42000000000, y)
}

func TestFixedClock(t *testing.T) {
	a := assert.New(t)

	ft := time.Date(2022, 4, 4, 13, 37, 0, 0, time.UTC)
	c := NewFixedClock(ft)
	a.True(ft.Equal(c.Now()))

	c.Advance(time.Minute)
	a.True(ft.Add(time.Minute).Equal(c.Now()))

	c.Set(ft)
	a.True(ft.Equal(c.Now()))
}

func TestClockOrDefault(t *testing.T) {
	a := assert.New(t)

	_, ok := ClockOrDefault(nil).(SystemClock)
	a.True(ok)
	a.Equal(time.UTC, ClockOrDefault(nil).Now().Location())

	c := NewFixedClock(time.Time{})
	a.Equal(c, ClockOrDefault(c))
}
