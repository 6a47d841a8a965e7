package flow

import (
	"context"

	"github.com/ib-77/rail/pkg/res"
)

// MapMaybe transforms the Some value. None and Fail propagate
// untouched; a selector returning a nil-equivalent yields the
// UnexpectedNull failure.
func MapMaybe[In, Out any](ctx context.Context, input res.Maybe[In],
	onSome func(ctx context.Context, in In) Out) res.Maybe[Out] {

	if onSome == nil {
		panic("flow: MapMaybe called with a nil selector")
	}
	switch {
	case input.IsSome():
		return res.Some(onSome(ctx, input.Value()))
	case input.IsNone():
		return res.None[Out]()
	default:
		return res.FailMaybe[Out](input.Err())
	}
}

// SwitchMaybe binds an operation that can itself fail or come up empty.
// None and Fail short-circuit without invoking the selector.
func SwitchMaybe[In, Out any](ctx context.Context, input res.Maybe[In],
	onSome func(ctx context.Context, in In) res.Maybe[Out]) res.Maybe[Out] {

	if onSome == nil {
		panic("flow: SwitchMaybe called with a nil selector")
	}
	switch {
	case input.IsSome():
		return onSome(ctx, input.Value())
	case input.IsNone():
		return res.None[Out]()
	default:
		return res.FailMaybe[Out](input.Err())
	}
}

// Filter turns Some into None when the predicate rejects the value.
// None and Fail flow through untouched.
func Filter[T any](ctx context.Context, input res.Maybe[T],
	predicate func(ctx context.Context, in T) bool) res.Maybe[T] {

	if predicate == nil {
		panic("flow: Filter called with a nil predicate")
	}
	if input.IsSome() && !predicate(ctx, input.Value()) {
		return res.None[T]()
	}
	return input
}

// RecoverMaybe converts a failure into Some by computing a fallback;
// None stays None.
func RecoverMaybe[T any](ctx context.Context, input res.Maybe[T],
	onFail func(ctx context.Context, err *res.Error) T) res.Maybe[T] {

	if onFail == nil {
		panic("flow: RecoverMaybe called with a nil handler")
	}
	if input.IsFail() {
		return res.Some(onFail(ctx, input.Err()))
	}
	return input
}

// OrElse replaces None with a supplied value; Some and Fail flow
// through untouched.
func OrElse[T any](ctx context.Context, input res.Maybe[T],
	onNone func(ctx context.Context) T) res.Maybe[T] {

	if onNone == nil {
		panic("flow: OrElse called with a nil supplier")
	}
	if input.IsNone() {
		return res.Some(onNone(ctx))
	}
	return input
}

// TeeMaybe runs a side effect on Some without altering the maybe.
func TeeMaybe[T any](ctx context.Context, input res.Maybe[T],
	onSome func(ctx context.Context, in T)) res.Maybe[T] {

	if input.IsSome() && onSome != nil {
		onSome(ctx, input.Value())
	}
	return input
}

// AlwaysMaybe runs a cleanup action exactly once regardless of state.
func AlwaysMaybe[T any](ctx context.Context, input res.Maybe[T],
	action func(ctx context.Context)) res.Maybe[T] {

	if action == nil {
		panic("flow: AlwaysMaybe called with a nil action")
	}
	action(ctx)
	return input
}

// TryMaybe sequences a call that reports failure through a returned
// error and absence through a nil-equivalent return.
func TryMaybe[In, Out any](ctx context.Context, input res.Maybe[In],
	onTry func(ctx context.Context, in In) (Out, error)) res.Maybe[Out] {

	if onTry == nil {
		panic("flow: TryMaybe called with a nil call")
	}
	switch {
	case input.IsSome():
		return res.TryMaybe(ctx, func(ctx context.Context) (Out, error) {
			return onTry(ctx, input.Value())
		}, nil)
	case input.IsNone():
		return res.None[Out]()
	default:
		return res.FailMaybe[Out](input.Err())
	}
}

// FinallyMaybe is the three-way destructor: exactly one handler runs,
// exactly once. Nil handlers are a contract violation.
func FinallyMaybe[In, Out any](ctx context.Context, input res.Maybe[In],
	onSome func(ctx context.Context, in In) Out,
	onNone func(ctx context.Context) Out,
	onFail func(ctx context.Context, err *res.Error) Out) Out {

	if onSome == nil || onNone == nil || onFail == nil {
		panic("flow: FinallyMaybe called with a nil handler")
	}
	switch {
	case input.IsSome():
		return onSome(ctx, input.Value())
	case input.IsNone():
		return onNone(ctx)
	default:
		return onFail(ctx, input.Err())
	}
}
