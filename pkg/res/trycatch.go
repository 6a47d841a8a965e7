package res

import (
	"context"
	"fmt"
)

// ErrorHandler converts a producer's error into the structured form.
// Returning nil falls back to FromError.
type ErrorHandler func(err error) *Error

// TryResult invokes a fallible producer and converts its outcome into a
// Result. A returned error becomes Fail through handler (or FromError
// when handler is nil); a cancellation-shaped error becomes the
// Canceled failure; a panic is recovered into a Fail carrying the
// panic's stack. This is the only boundary, together with TryMaybe and
// TryUnit, where a thrown signal is turned into data.
func TryResult[T any](ctx context.Context, producer func(ctx context.Context) (T, error),
	handler ErrorHandler) (out Result[T]) {

	if producer == nil {
		panic("res: TryResult called with a nil producer")
	}

	defer func() {
		if p := recover(); p != nil {
			out = Result[T]{err: errorFromPanic(p)}
		}
	}()

	v, err := producer(ctx)
	if err != nil {
		return Result[T]{err: convertError(err, handler)}
	}
	return Success(v)
}

// TryMaybe is TryResult for optional values: a nil-equivalent return is
// None rather than a failure.
func TryMaybe[T any](ctx context.Context, producer func(ctx context.Context) (T, error),
	handler ErrorHandler) (out Maybe[T]) {

	if producer == nil {
		panic("res: TryMaybe called with a nil producer")
	}

	defer func() {
		if p := recover(); p != nil {
			out = Maybe[T]{err: errorFromPanic(p), state: maybeFail}
		}
	}()

	v, err := producer(ctx)
	if err != nil {
		return Maybe[T]{err: convertError(err, handler), state: maybeFail}
	}
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// TryUnit wraps a value-less action.
func TryUnit(ctx context.Context, action func(ctx context.Context) error,
	handler ErrorHandler) (out UnitResult) {

	if action == nil {
		panic("res: TryUnit called with a nil action")
	}

	defer func() {
		if p := recover(); p != nil {
			out = Result[Unit]{err: errorFromPanic(p)}
		}
	}()

	if err := action(ctx); err != nil {
		return Result[Unit]{err: convertError(err, handler)}
	}
	return OK()
}

func convertError(err error, handler ErrorHandler) *Error {
	if IsCancellation(err) {
		return Canceled().WithMessage(err.Error())
	}
	if handler != nil {
		if e := handler(err); e != nil {
			return e
		}
	}
	return FromError(err)
}

func errorFromPanic(p any) *Error {
	return InternalError().
		WithMessagef("Recovered from panic: %v.", p).
		WithTitle(fmt.Sprintf("%T", p)).
		withStackSkip(3)
}
