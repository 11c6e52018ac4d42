package timing

import (
	"sync"
	"time"

	"github.com/on-the-ground/fossen_go/host"
)

// Debounce returns a function that postpones fn until wait has passed without
// another call. Only the most recent argument is delivered; fn runs on loop.
// The returned function reports false once loop is closed, in which case the
// call is dropped.
func Debounce[A any](loop *host.Loop, wait time.Duration, fn func(A)) func(A) bool {
	var (
		mu      sync.Mutex
		pending host.TimerID
	)
	return func(a A) bool {
		mu.Lock()
		defer mu.Unlock()
		if pending != 0 {
			loop.ClearTimeout(pending)
		}
		pending = loop.SetTimeout(func() { fn(a) }, wait)
		return pending != 0
	}
}
