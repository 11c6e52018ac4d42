package host

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UTCNow returns the clock's current time in UTC. A nil clock reads the
// system time.
func UTCNow(c Clock) time.Time {
	if c == nil {
		c = SystemClock{}
	}
	return c.Now().UTC()
}

// Window is the half-open span [from, from+d).
func Window(from time.Time, d time.Duration) TimeSpan {
	return timespan.BetweenTimes(from, from.Add(d))
}
