// Package task provides a minimal future type to run work synchronously or on its own goroutine
// and to wait for its result.
package task

import (
	"context"
	"fmt"

	"github.com/dkinzler/respkit/errors"
)

const errorOrigin = "task"

// Future holds the result of a computation that might not have completed yet.
// A Future is safe for concurrent use, any number of goroutines can wait for the result.
type Future[T any] struct {
	done   chan struct{}
	result T
	err    error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) complete(result T, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// FromResult returns a completed Future with the given result.
func FromResult[T any](result T) *Future[T] {
	f := newFuture[T]()
	f.complete(result, nil)
	return f
}

// FromError returns a completed Future that failed with err.
// Panics with an error with code InvalidArgument if err is nil.
func FromError[T any](err error) *Future[T] {
	if err == nil {
		panic(errors.NewInvalidArgument(errorOrigin, "err"))
	}
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

// Convert runs fn on the calling goroutine and returns its result as a completed Future.
// If ctx is already done, fn is not called and the Future fails with the error of the context.
// A panic in fn is recovered and returned as an error with code Internal.
func Convert[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	if fn == nil {
		panic(errors.NewInvalidArgument(errorOrigin, "fn"))
	}
	f := newFuture[T]()
	run(ctx, f, fn)
	return f
}

// Start runs fn on a new goroutine, the returned Future completes when fn returns.
// If ctx is already done when the goroutine starts, fn is not called and the Future fails with the error of the context.
// A panic in fn is recovered and returned as an error with code Internal.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	if fn == nil {
		panic(errors.NewInvalidArgument(errorOrigin, "fn"))
	}
	f := newFuture[T]()
	go run(ctx, f, fn)
	return f
}

func run[T any](ctx context.Context, f *Future[T], fn func(context.Context) (T, error)) {
	var result T
	var err error
	defer func() {
		if e := recover(); e != nil {
			var zero T
			f.complete(zero, errors.New(nil, errorOrigin, errors.Internal).WithInternalMessage(fmt.Sprintf("panic: %v", e)))
			return
		}
		f.complete(result, err)
	}()
	if err = ctx.Err(); err != nil {
		return
	}
	result, err = fn(ctx)
}

// Done returns a channel that is closed when the Future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsCompleted reports whether the Future has completed.
func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the Future completes or ctx is done.
// If ctx is done first, the error of the context is returned, the computation itself is not cancelled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// RunSync blocks until f completes and returns its result.
func RunSync[T any](f *Future[T]) (T, error) {
	if f == nil {
		panic(errors.NewInvalidArgument(errorOrigin, "future"))
	}
	<-f.done
	return f.result, f.err
}
