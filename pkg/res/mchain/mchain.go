package mchain

import (
	"context"

	"github.com/ib-77/rail/pkg/res"
	"github.com/ib-77/rail/pkg/res/flow"
)

// Chain is a minimal fluent wrapper over res.Maybe[T] with value
// receivers; the three-way Some/None/Fail split short-circuits every
// step.
type Chain[T any] struct {
	ctx context.Context
	m   res.Maybe[T]
}

func Start[T any](ctx context.Context, m res.Maybe[T]) Chain[T] {
	return Chain[T]{ctx: ctx, m: m}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, res.Some(v))
}

func (c Chain[T]) Maybe() res.Maybe[T] {
	return c.m
}

// Then composes functions that already return res.Maybe[T]
func (c Chain[T]) Then(onSome func(ctx context.Context, t T) res.Maybe[T]) Chain[T] {
	if !c.m.IsSome() {
		return c
	}
	return Chain[T]{ctx: c.ctx, m: onSome(c.ctx, c.m.Value())}
}

// ThenTry composes functions that return (T, error); a nil-equivalent
// return becomes None
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, m: flow.TryMaybe(c.ctx, c.m, try)}
}

// Map transforms the Some value to a new value
func (c Chain[T]) Map(onSome func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, m: flow.MapMaybe(c.ctx, c.m, onSome)}
}

// Filter turns Some into None when the predicate rejects the value
func (c Chain[T]) Filter(predicate func(ctx context.Context, t T) bool) Chain[T] {
	return Chain[T]{ctx: c.ctx, m: flow.Filter(c.ctx, c.m, predicate)}
}

// Or picks the first usable outcome among this chain and the
// alternative: Some wins, then the first failure, then None.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasFail := false
	var failC Chain[T]

	for _, ch := range candidates {
		if ch.m.IsSome() {
			return ch
		}
		if ch.m.IsFail() && !hasFail {
			hasFail = true
			failC = ch
		}
	}

	if hasFail {
		return failC
	}
	return c
}

// And requires every chain to be Some; the first non-Some outcome wins,
// otherwise the last chain is returned.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if !ch.m.IsSome() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for each state without changing the maybe
func (c Chain[T]) Ensure(onSome func(context.Context, T), onNone func(context.Context),
	onFail func(context.Context, *res.Error)) Chain[T] {

	switch {
	case c.m.IsFail():
		if onFail != nil {
			onFail(c.ctx, c.m.Err())
		}
	case c.m.IsNone():
		if onNone != nil {
			onNone(c.ctx)
		}
	default:
		if onSome != nil {
			onSome(c.ctx, c.m.Value())
		}
	}
	return c
}

// Finally collapses the chain to a final value, delegating to
// flow.FinallyMaybe
func (c Chain[T]) Finally(
	onSome func(context.Context, T) T,
	onNone func(context.Context) T,
	onFail func(context.Context, *res.Error) T,
) T {
	return flow.FinallyMaybe(c.ctx, c.m, onSome, onNone, onFail)
}
