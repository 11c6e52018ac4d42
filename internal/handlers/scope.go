package handlers

import (
	"github.com/google/uuid"
)

// handlerScope is owned by the goroutine that registered it.
// Close is not safe to call concurrently.
type handlerScope[T any] struct {
	HandlerId  string
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closed     bool
}

func (hs *handlerScope[T]) Close() {
	if !hs.closed {
		hs.closeFn()
		hs.closed = true
	}
}

func newHandlerScope[T any](
	dispatcher WorkerDispatcher[T],
	teardown func(),
) *handlerScope[T] {
	return &handlerScope[T]{
		HandlerId:  uuid.New().String(),
		dispatcher: dispatcher,
		closeFn:    teardown,
		closed:     false,
	}
}
