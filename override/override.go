// Package override wraps a function so that every call is routed through an
// interceptor first.
//
// The interceptor receives a fresh State per call. It may change State.This or
// State.Args before calling CallOverridden, call CallOriginal to run the
// wrapped function with exactly what the caller passed, or not call the
// wrapped function at all.
//
//	h, err := override.New(save, func(s *override.State[*Store, error]) error {
//	    s.Args = append(s.Args, "audit")
//	    return s.CallOverridden()
//	})
//	store.save = h.Call
//	...
//	store.save = h.Original // restore
package override

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrNotCallable = errors.New("argument is not callable")

// Func is a function called with a receiver and a variable argument list.
type Func[T, R any] func(this T, args ...any) R

// Interceptor decides what a call to an overridden function does.
type Interceptor[T, R any] func(s *State[T, R]) R

// State describes one call of an overridden function.
type State[T, R any] struct {
	Original Func[T, R]
	This     T
	Args     []any

	originalThis T
	originalArgs []any
}

// CallOverridden calls Original with the current This and Args.
func (s *State[T, R]) CallOverridden() R {
	return s.Original(s.This, s.Args...)
}

// CallOriginal calls Original with the receiver and arguments of the call as
// it was made, ignoring any change to This or Args.
func (s *State[T, R]) CallOriginal() R {
	args := make([]any, len(s.originalArgs))
	copy(args, s.originalArgs)
	return s.Original(s.originalThis, args...)
}

// Handle pairs the replacement function with the function it replaced.
type Handle[T, R any] struct {
	Call     Func[T, R]
	Original Func[T, R]
}

// New builds the replacement for original. Both arguments are required.
func New[T, R any](original Func[T, R], interceptor Interceptor[T, R]) (Handle[T, R], error) {
	var err error
	if original == nil {
		err = multierr.Append(err, fmt.Errorf("%w: function to override", ErrNotCallable))
	}
	if interceptor == nil {
		err = multierr.Append(err, fmt.Errorf("%w: overriding function", ErrNotCallable))
	}
	if err != nil {
		return Handle[T, R]{}, err
	}

	call := func(this T, args ...any) R {
		pristine := make([]any, len(args))
		copy(pristine, args)
		current := make([]any, len(args))
		copy(current, args)
		return interceptor(&State[T, R]{
			Original:     original,
			This:         this,
			Args:         current,
			originalThis: this,
			originalArgs: pristine,
		})
	}
	return Handle[T, R]{Call: call, Original: original}, nil
}
