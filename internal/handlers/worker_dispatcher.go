package handlers

import (
	"context"
	"sync"
)

type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Send enqueues msg and reports whether it was accepted. An accepted
	// message is handled even if Stop follows, unless the queue's ctx ends.
	Send(ctx context.Context, msg T) bool
	// Stop makes the worker drain what is already buffered and exit.
	Stop()
	Done() <-chan struct{}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	stopCh   chan struct{}
	stopOnce *sync.Once
	doneCh   chan struct{}
	// sendMu orders Send against Stop: senders hold it shared.
	sendMu *sync.RWMutex
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Send(ctx context.Context, msg T) bool {
	q.sendMu.RLock()
	defer q.sendMu.RUnlock()
	select {
	case <-q.stopCh:
		return false
	case <-q.doneCh:
		return false
	default:
	}
	select {
	case <-ctx.Done():
		return false
	case <-q.doneCh:
		return false
	case q.effectCh <- msg:
		return true
	}
}

// Stop waits for in-flight Sends, so it must not be called from handleFn.
func (q singleQueue[T]) Stop() {
	q.stopOnce.Do(func() {
		q.sendMu.Lock()
		close(q.stopCh)
		q.sendMu.Unlock()
	})
}

func (q singleQueue[T]) Done() <-chan struct{} {
	return q.doneCh
}

// NewSingleQueue starts one worker goroutine that hands every message sent on
// the dispatcher channel to handleFn, in arrival order.
// Cancelling ctx drops buffered messages; Stop drains them first.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	q := singleQueue[T]{
		effectCh: make(chan T, bufferSize),
		stopCh:   make(chan struct{}),
		stopOnce: &sync.Once{},
		doneCh:   make(chan struct{}),
		sendMu:   &sync.RWMutex{},
	}
	ready := make(chan struct{})

	go func() {
		defer close(q.doneCh)
		close(ready)
		for {
			select {
			case msg := <-q.effectCh:
				handleFn(ctx, msg)
			case <-q.stopCh:
				for {
					select {
					case msg := <-q.effectCh:
						handleFn(ctx, msg)
					default:
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	<-ready

	return q
}
