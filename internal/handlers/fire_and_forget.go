package handlers

import (
	"context"
)

// NewFireAndForgetHandler starts a single worker that runs handleFn for every
// payload sent through FireAndForget. Close drains buffered payloads, waits
// for the worker, then runs teardown.
func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	dispatcher := NewSingleQueue(
		ctx,
		bufferSize,
		func(ctx context.Context, msg fireAndForgetMessage[P]) {
			handleFn(ctx, msg.payload)
		},
	)
	return FireAndForgetHandler[P]{
		handlerScope: newHandlerScope(
			dispatcher,
			func() {
				dispatcher.Stop()
				<-dispatcher.Done()
				teardown()
			},
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*handlerScope[fireAndForgetMessage[P]]
}

// FireAndForget enqueues payload without waiting for it to be handled.
// It returns false when the payload was dropped because ctx ended or the
// handler already stopped. A payload accepted before Close is handled
// before teardown runs.
func (h FireAndForgetHandler[P]) FireAndForget(ctx context.Context, payload P) bool {
	return h.dispatcher.Send(ctx, fireAndForgetMessage[P]{payload: payload})
}

type fireAndForgetMessage[P any] struct {
	payload P
}
