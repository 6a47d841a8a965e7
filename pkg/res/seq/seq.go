package seq

import (
	"github.com/ib-77/rail/pkg/res"
)

// FirstOrFail returns the first element matching the predicate, or the
// NotFound failure when nothing matches. A nil predicate matches every
// element.
func FirstOrFail[T any](items []T, predicate func(in T) bool) res.Result[T] {
	for _, item := range items {
		if predicate == nil || predicate(item) {
			return res.Success(item)
		}
	}
	return res.Fail[T](res.NotFound().WithMessage("Sequence contains no matching element."))
}

// FirstOrNone returns the first matching element, or None when nothing
// matches; absence here is an expected outcome, not a failure.
func FirstOrNone[T any](items []T, predicate func(in T) bool) res.Maybe[T] {
	for _, item := range items {
		if predicate == nil || predicate(item) {
			return res.Some(item)
		}
	}
	return res.None[T]()
}

// LastOrNone returns the last matching element, or None.
func LastOrNone[T any](items []T, predicate func(in T) bool) res.Maybe[T] {
	for i := len(items) - 1; i >= 0; i-- {
		if predicate == nil || predicate(items[i]) {
			return res.Some(items[i])
		}
	}
	return res.None[T]()
}

// SingleOrFail returns the only matching element. No match fails with
// NotFound; more than one match fails with BadRequest.
func SingleOrFail[T any](items []T, predicate func(in T) bool) res.Result[T] {
	found := false
	var single T
	for _, item := range items {
		if predicate == nil || predicate(item) {
			if found {
				return res.Fail[T](res.BadRequest().
					WithMessage("Sequence contains more than one matching element."))
			}
			found = true
			single = item
		}
	}
	if !found {
		return res.Fail[T](res.NotFound().WithMessage("Sequence contains no matching element."))
	}
	return res.Success(single)
}

// AtOrNone returns the element at index, or None when out of range.
func AtOrNone[T any](items []T, index int) res.Maybe[T] {
	if index < 0 || index >= len(items) {
		return res.None[T]()
	}
	return res.Some(items[index])
}

// MapSlice transforms every element through a result-returning
// selector; the first failure wins and later elements are not visited.
func MapSlice[In, Out any](items []In, selector func(in In) res.Result[Out]) res.Result[[]Out] {
	if selector == nil {
		panic("seq: MapSlice called with a nil selector")
	}
	out := make([]Out, 0, len(items))
	for _, item := range items {
		r := selector(item)
		if r.IsFail() {
			return res.Fail[[]Out](r.Err())
		}
		out = append(out, r.Value())
	}
	return res.Success(out)
}
