package timing

import (
	"sync"
	"time"

	"github.com/on-the-ground/fossen_go/host"
)

// Throttle returns a function that calls fn at most once per interval.
// The first call runs immediately; calls inside the window that follows are
// dropped and report false. A nil clock reads the system time.
func Throttle[A any](clock host.Clock, interval time.Duration, fn func(A)) func(A) bool {
	if clock == nil {
		clock = host.SystemClock{}
	}
	var (
		mu     sync.Mutex
		window host.TimeSpan
		primed bool
	)
	return func(a A) bool {
		now := clock.Now()
		mu.Lock()
		if primed && interval > 0 && window.Contains(now) {
			mu.Unlock()
			return false
		}
		primed = true
		window = host.Window(now, interval)
		mu.Unlock()

		fn(a)
		return true
	}
}
