package chain

import (
	"context"

	"github.com/ib-77/rail/pkg/res"
	"github.com/ib-77/rail/pkg/res/flow"
)

// Chain wraps a res.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result res.Result[T]
}

// Start creates a new chain from a res.Result
func Start[T any](ctx context.Context, result res.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: res.Success(value),
	}
}

// Result returns the underlying res.Result
func (c *Chain[T]) Result() res.Result[T] {
	return c.result
}

// Then chains a function that returns res.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) res.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: flow.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: flow.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: flow.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Validate turns the success into a failure when invalid
func (c *Chain[T]) Validate(validate func(ctx context.Context, in T) (valid bool, errMsg string)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: flow.AndValidate(c.ctx, c.result, validate),
	}
}

// ToFailIf turns the success into a failure when the predicate rejects it
func (c *Chain[T]) ToFailIf(predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) *res.Error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: flow.ToFailIf(c.ctx, c.result, predicate, onFalse),
	}
}

// Recover converts a failure into a success via a fallback value
func (c *Chain[T]) Recover(onFail func(ctx context.Context, err *res.Error) T) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: flow.Recover(c.ctx, c.result, onFail),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: flow.Tee(c.ctx, c.result, onSuccess),
	}
}

// Always runs a cleanup action regardless of state
func (c *Chain[T]) Always(action func(context.Context)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: flow.Always(c.ctx, c.result, action),
	}
}

// Finally collapses the chain into a final result using flow.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFail func(context.Context, *res.Error) U) U {
	return flow.Finally[T, U](c.ctx, c.result, onSuccess, onFail)
}
