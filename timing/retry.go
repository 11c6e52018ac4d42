package timing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/on-the-ground/fossen_go/host"
	"github.com/on-the-ground/fossen_go/log"
)

const (
	DefaultAttempts = 5
	DefaultDelay    = 100 * time.Millisecond
)

// ErrAttemptsExhausted reports a function that never succeeded within its
// attempts. It carries no detail about the last failure.
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

type RetryConfig struct {
	Attempts int           // default: 5
	Delay    time.Duration // default: 100ms
	// AfterLoad defers the next attempt to the document load event while the
	// document is still loading.
	AfterLoad bool
}

func NewRetryConfig(attempts int, delay time.Duration, afterLoad bool) RetryConfig {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return RetryConfig{
		Attempts:  attempts,
		Delay:     delay,
		AfterLoad: afterLoad,
	}
}

// Outcome is the settled result of a Retry sequence.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Retry calls fn on loop until it succeeds or the attempt budget runs out.
//
// Attempts never overlap: the next one is scheduled only after the previous
// one returned. With cfg.AfterLoad set and doc not yet loaded, a failure waits
// for the load event instead of the timer and does not use up an attempt.
// A panic in fn counts as a failed attempt.
//
// The returned channel receives exactly one Outcome and is then closed.
// Cancelling ctx settles it with ctx.Err(), and closing loop settles it with
// host.ErrLoopClosed, even while an attempt is waiting on a timer or on the
// load event.
func Retry[R any](
	ctx context.Context,
	loop *host.Loop,
	doc *host.Document,
	cfg RetryConfig,
	fn func() (R, error),
) <-chan Outcome[R] {
	r := &retryRun[R]{
		ctx:  ctx,
		loop: loop,
		doc:  doc,
		cfg:  NewRetryConfig(cfg.Attempts, cfg.Delay, cfg.AfterLoad),
		fn:   fn,
		out:  make(chan Outcome[R], 1),
	}
	r.attemptsLeft = r.cfg.Attempts

	r.watch(
		context.AfterFunc(ctx, func() { r.settle(Outcome[R]{Err: ctx.Err()}) }),
		context.AfterFunc(loop.Context(), func() { r.settle(Outcome[R]{Err: host.ErrLoopClosed}) }),
	)
	if err := loop.Post(r.attempt); err != nil {
		r.settle(Outcome[R]{Err: err})
	}
	return r.out
}

// retryRun is the state of one Retry sequence.
type retryRun[R any] struct {
	ctx  context.Context
	loop *host.Loop
	doc  *host.Document
	cfg  RetryConfig
	fn   func() (R, error)
	out  chan Outcome[R]

	// attemptsLeft is only touched from the loop.
	attemptsLeft int

	mu      sync.Mutex
	settled bool
	timer   host.TimerID
	stops   []func() bool
}

// watch keeps the stop functions of context watchers until the run settles.
func (r *retryRun[R]) watch(stops ...func() bool) {
	r.mu.Lock()
	if !r.settled {
		r.stops = append(r.stops, stops...)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}

func (r *retryRun[R]) done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settled
}

// settle delivers o unless an outcome was already delivered.
func (r *retryRun[R]) settle(o Outcome[R]) {
	r.mu.Lock()
	if r.settled {
		r.mu.Unlock()
		return
	}
	r.settled = true
	timer, stops := r.timer, r.stops
	r.timer, r.stops = 0, nil
	r.mu.Unlock()

	if timer != 0 {
		r.loop.ClearTimeout(timer)
	}
	for _, stop := range stops {
		stop()
	}
	r.out <- o
	close(r.out)
}

func (r *retryRun[R]) schedule() bool {
	id := r.loop.SetTimeout(r.attempt, r.cfg.Delay)
	if id == 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settled {
		r.loop.ClearTimeout(id)
		return true
	}
	r.timer = id
	return true
}

func (r *retryRun[R]) attempt() {
	r.mu.Lock()
	if r.settled {
		r.mu.Unlock()
		return
	}
	r.timer = 0
	r.mu.Unlock()

	if err := r.ctx.Err(); err != nil {
		r.settle(Outcome[R]{Err: err})
		return
	}

	v, err := callRecovering(r.fn)
	if err == nil {
		r.settle(Outcome[R]{Value: v})
		return
	}
	if r.done() {
		return
	}

	if r.cfg.AfterLoad && r.doc != nil && !r.doc.Loaded() {
		log.LogEff(r.ctx, log.LogDebug, "retry deferred until document load", map[string]interface{}{
			"error": err.Error(),
		})
		if err := r.doc.OnLoad(r.attempt); err != nil {
			r.settle(Outcome[R]{Err: err})
		}
		return
	}

	r.attemptsLeft--
	if r.attemptsLeft > 0 {
		log.LogEff(r.ctx, log.LogDebug, "retry attempt failed", map[string]interface{}{
			"error":        err.Error(),
			"attemptsLeft": r.attemptsLeft,
			"delay":        r.cfg.Delay.String(),
		})
		if !r.schedule() {
			r.settle(Outcome[R]{Err: host.ErrLoopClosed})
		}
		return
	}

	log.LogEff(r.ctx, log.LogDebug, "retry attempts exhausted", map[string]interface{}{
		"attempts": r.cfg.Attempts,
	})
	r.settle(Outcome[R]{Err: ErrAttemptsExhausted})
}

func callRecovering[R any](fn func() (R, error)) (v R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
