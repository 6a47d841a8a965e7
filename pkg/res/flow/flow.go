package flow

import (
	"context"

	"github.com/ib-77/rail/pkg/res"
)

// Succeed lifts a value into a result.
func Succeed[T any](input T) res.Result[T] {
	return res.Success(input)
}

// Fail lifts an error into a result.
func Fail[T any](err error) res.Result[T] {
	return res.Fail[T](err)
}

// Map transforms the successful value. On failure the selector is never
// invoked and the same error flows through; only the payload type
// changes. A selector returning a nil-equivalent yields the
// UnexpectedNull failure.
func Map[In, Out any](ctx context.Context, input res.Result[In],
	onSuccess func(ctx context.Context, in In) Out) res.Result[Out] {

	if onSuccess == nil {
		panic("flow: Map called with a nil selector")
	}
	if input.IsSuccess() {
		return res.Success(onSuccess(ctx, input.Value()))
	}
	return res.Fail[Out](input.Err())
}

// Switch is the bind primitive: it sequences an operation that can
// itself fail. On failure the selector is never invoked and the same
// error flows through.
func Switch[In, Out any](ctx context.Context, input res.Result[In],
	onSuccess func(ctx context.Context, in In) res.Result[Out]) res.Result[Out] {

	if onSuccess == nil {
		panic("flow: Switch called with a nil selector")
	}
	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return res.Fail[Out](input.Err())
}

// Validate applies a validation to a raw value, failing with a
// BadRequest carrying errMsg when invalid.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) res.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

// AndValidate applies a validation to an already-wrapped result.
func AndValidate[T any](ctx context.Context, input res.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) res.Result[T] {

	if validate == nil {
		panic("flow: AndValidate called with a nil validation")
	}
	if input.IsSuccess() {
		if valid, errMsg := validate(ctx, input.Value()); !valid {
			return res.Fail[T](res.BadRequest().WithMessage(errMsg))
		}
	}
	return input
}

// ToFailIf turns a success into a failure when the predicate rejects
// the value. A nil onFalse supplies the default BadRequest error.
func ToFailIf[T any](ctx context.Context, input res.Result[T],
	predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) *res.Error) res.Result[T] {

	if predicate == nil {
		panic("flow: ToFailIf called with a nil predicate")
	}
	if !input.IsSuccess() || predicate(ctx, input.Value()) {
		return input
	}
	if onFalse != nil {
		return res.Fail[T](onFalse(ctx, input.Value()))
	}
	return res.Fail[T](res.BadRequest())
}

// Recover converts a failure into a success by computing a fallback.
// It is never invoked on success.
func Recover[T any](ctx context.Context, input res.Result[T],
	onFail func(ctx context.Context, err *res.Error) T) res.Result[T] {

	if onFail == nil {
		panic("flow: Recover called with a nil handler")
	}
	if input.IsFail() {
		return res.Success(onFail(ctx, input.Err()))
	}
	return input
}

// Tee runs a side effect on success without altering the result.
func Tee[T any](ctx context.Context, input res.Result[T],
	onSuccess func(ctx context.Context, in T)) res.Result[T] {

	if input.IsSuccess() && onSuccess != nil {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TeeFail runs a side effect on failure without altering the result.
func TeeFail[T any](ctx context.Context, input res.Result[T],
	onFail func(ctx context.Context, err *res.Error)) res.Result[T] {

	if input.IsFail() && onFail != nil {
		onFail(ctx, input.Err())
	}
	return input
}

// DoubleTee runs exactly one side effect depending on state, without
// altering the result.
func DoubleTee[T any](ctx context.Context, input res.Result[T],
	onSuccess func(ctx context.Context, in T),
	onFail func(ctx context.Context, err *res.Error)) res.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Value())
		}
	} else if onFail != nil {
		onFail(ctx, input.Err())
	}
	return input
}

// Always runs a cleanup action exactly once regardless of state,
// without altering the result.
func Always[T any](ctx context.Context, input res.Result[T],
	action func(ctx context.Context)) res.Result[T] {

	if action == nil {
		panic("flow: Always called with a nil action")
	}
	action(ctx)
	return input
}

// Try sequences a call that reports failure through a returned error,
// converting it at this boundary. Cancellation-shaped errors become the
// Canceled failure.
func Try[In, Out any](ctx context.Context, input res.Result[In],
	onTry func(ctx context.Context, in In) (Out, error)) res.Result[Out] {

	if onTry == nil {
		panic("flow: Try called with a nil call")
	}
	if input.IsSuccess() {
		return res.TryResult(ctx, func(ctx context.Context) (Out, error) {
			return onTry(ctx, input.Value())
		}, nil)
	}
	return res.Fail[Out](input.Err())
}

// Finally is the universal destructor: exactly one handler runs,
// exactly once. Nil handlers are a contract violation.
func Finally[In, Out any](ctx context.Context, input res.Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onFail func(ctx context.Context, err *res.Error) Out) Out {

	if onSuccess == nil || onFail == nil {
		panic("flow: Finally called with a nil handler")
	}
	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFail(ctx, input.Err())
}

// FinallyUnit destructures a value-less result.
func FinallyUnit[Out any](ctx context.Context, input res.UnitResult,
	onSuccess func(ctx context.Context) Out,
	onFail func(ctx context.Context, err *res.Error) Out) Out {

	if onSuccess == nil || onFail == nil {
		panic("flow: FinallyUnit called with a nil handler")
	}
	if input.IsSuccess() {
		return onSuccess(ctx)
	}
	return onFail(ctx, input.Err())
}
