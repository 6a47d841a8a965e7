package future

import (
	"context"

	"github.com/ib-77/rail/pkg/res"
	"github.com/ib-77/rail/pkg/res/flow"
)

// Result runs an async producer and forwards its single completion as a
// channel that yields exactly one res.Result and closes. The producer's
// error or panic is converted at the res.TryResult boundary.
func Result[T any](ctx context.Context, producer func(ctx context.Context) (T, error)) <-chan res.Result[T] {
	out := make(chan res.Result[T], 1)
	go func() {
		defer close(out)
		out <- res.TryResult(ctx, producer, nil)
	}()
	return out
}

// Maybe is Result for optional values: a nil-equivalent return is None.
func Maybe[T any](ctx context.Context, producer func(ctx context.Context) (T, error)) <-chan res.Maybe[T] {
	out := make(chan res.Maybe[T], 1)
	go func() {
		defer close(out)
		out <- res.TryMaybe(ctx, producer, nil)
	}()
	return out
}

// Await receives the upstream completion, or returns the Canceled
// failure if ctx is done first or the channel closes without a value.
func Await[T any](ctx context.Context, in <-chan res.Result[T]) res.Result[T] {
	select {
	case r, ok := <-in:
		if !ok {
			return res.Fail[T](res.Canceled().WithMessage("The upstream completed without a result."))
		}
		return r
	case <-ctx.Done():
		return res.Fail[T](res.Canceled().WithMessage(ctx.Err().Error()))
	}
}

// AwaitMaybe is Await for maybe-carrying upstreams.
func AwaitMaybe[T any](ctx context.Context, in <-chan res.Maybe[T]) res.Maybe[T] {
	select {
	case m, ok := <-in:
		if !ok {
			return res.FailMaybe[T](res.Canceled().WithMessage("The upstream completed without a result."))
		}
		return m
	case <-ctx.Done():
		return res.FailMaybe[T](res.Canceled().WithMessage(ctx.Err().Error()))
	}
}

// Map awaits the upstream completion and applies the synchronous map
// combinator to it. No additional scheduling happens: one value in, one
// value out.
func Map[In, Out any](ctx context.Context, in <-chan res.Result[In],
	onSuccess func(ctx context.Context, in In) Out) <-chan res.Result[Out] {

	out := make(chan res.Result[Out], 1)
	go func() {
		defer close(out)
		out <- flow.Map(ctx, Await(ctx, in), onSuccess)
	}()
	return out
}

// Switch awaits the upstream completion and binds the next operation.
func Switch[In, Out any](ctx context.Context, in <-chan res.Result[In],
	onSuccess func(ctx context.Context, in In) res.Result[Out]) <-chan res.Result[Out] {

	out := make(chan res.Result[Out], 1)
	go func() {
		defer close(out)
		out <- flow.Switch(ctx, Await(ctx, in), onSuccess)
	}()
	return out
}

// Try awaits the upstream completion and sequences an error-returning
// call, converting its error at the boundary.
func Try[In, Out any](ctx context.Context, in <-chan res.Result[In],
	onTry func(ctx context.Context, in In) (Out, error)) <-chan res.Result[Out] {

	out := make(chan res.Result[Out], 1)
	go func() {
		defer close(out)
		out <- flow.Try(ctx, Await(ctx, in), onTry)
	}()
	return out
}

// Finally blocks for the upstream completion and destructures it.
func Finally[In, Out any](ctx context.Context, in <-chan res.Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onFail func(ctx context.Context, err *res.Error) Out) Out {

	return flow.Finally(ctx, Await(ctx, in), onSuccess, onFail)
}

// FinallyMaybe blocks for the upstream completion and destructures it
// three ways.
func FinallyMaybe[In, Out any](ctx context.Context, in <-chan res.Maybe[In],
	onSome func(ctx context.Context, in In) Out,
	onNone func(ctx context.Context) Out,
	onFail func(ctx context.Context, err *res.Error) Out) Out {

	return flow.FinallyMaybe(ctx, AwaitMaybe(ctx, in), onSome, onNone, onFail)
}
