package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/fossen_go/log"
)

var ErrLoopClosed = errors.New("loop is closed")

// TimerID identifies a pending SetTimeout callback. The zero value never
// identifies a timer.
type TimerID uint64

type Loop struct {
	Id string

	ctx    context.Context
	cancel context.CancelFunc
	wake   chan struct{}
	done   chan struct{}

	mu        sync.Mutex
	queue     []func()
	closed    bool
	timers    map[TimerID]*time.Timer
	nextTimer TimerID
}

// NewLoop starts a loop goroutine. The loop stops when Close is called or
// ctx is cancelled, whichever happens first.
func NewLoop(ctx context.Context) *Loop {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{
		Id:     uuid.New().String(),
		ctx:    ctx,
		cancel: cancel,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		timers: make(map[TimerID]*time.Timer),
	}
	ready := make(chan struct{})
	go func() {
		close(ready)
		l.run()
	}()
	<-ready
	return l
}

// Post queues fn to run after everything already queued.
func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrLoopClosed
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

// SetTimeout runs fn on the loop once d has elapsed, unless ClearTimeout is
// called first. It returns the zero TimerID if the loop is closed.
func (l *Loop) SetTimeout(fn func(), d time.Duration) TimerID {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0
	}
	l.nextTimer++
	id := l.nextTimer
	l.timers[id] = time.AfterFunc(d, func() {
		_ = l.Post(func() {
			if l.takeTimer(id) {
				fn()
			}
		})
	})
	return id
}

// ClearTimeout cancels a pending timer. A callback whose delay already
// elapsed but which has not run yet is cancelled too.
func (l *Loop) ClearTimeout(id TimerID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
}

// Close stops all timers and the loop goroutine. Callbacks still queued are
// discarded. Close may be called from inside a loop callback.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
	l.queue = nil
	l.mu.Unlock()

	log.LogEff(l.ctx, log.LogDebug, "loop closed", map[string]interface{}{"loopId": l.Id})
	l.cancel()
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Context is cancelled when the loop closes.
func (l *Loop) Context() context.Context {
	return l.ctx
}

func (l *Loop) takeTimer(id TimerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.timers[id]; !ok {
		return false
	}
	delete(l.timers, id)
	return true
}

func (l *Loop) next() (fn func(), ok bool, closed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, false, true
	}
	if len(l.queue) == 0 {
		return nil, false, false
	}
	fn = l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true, false
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		fn, ok, closed := l.next()
		if closed {
			return
		}
		if ok {
			l.runTask(fn)
			continue
		}
		select {
		case <-l.wake:
		case <-l.ctx.Done():
			l.Close()
		}
	}
}

func (l *Loop) runTask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.LogEff(l.ctx, log.LogError, "panic in loop callback", map[string]interface{}{
				"loopId": l.Id,
				"panic":  fmt.Sprint(r),
			})
		}
	}()
	fn()
}
