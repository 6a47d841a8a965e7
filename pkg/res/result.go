package res

import "fmt"

// Result is a two-state sum type: Success carrying a value, or Fail
// carrying an *Error. The zero Result is invalid; always construct
// through Success or Fail.
type Result[T any] struct {
	value     T
	err       *Error
	isSuccess bool
}

// Success wraps a value. A nil-equivalent value never produces a
// success: it yields Fail(UnexpectedNull) instead.
func Success[T any](value T) Result[T] {
	if IsNil(value) {
		return Result[T]{err: UnexpectedNull()}
	}
	return Result[T]{value: value, isSuccess: true}
}

// Fail wraps an error. A non-*Error is converted through FromError so
// the structured form is preserved end to end. A nil err is a contract
// violation.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		panic("res: Fail called with a nil error")
	}
	return Result[T]{err: FromError(err)}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFail() bool {
	return r.err != nil
}

// IsCanceled reports whether the failure is a mapped cancellation.
func (r Result[T]) IsCanceled() bool {
	return r.err != nil && r.err.IsCanceled()
}

// Value returns the success value. Calling it on a non-success result is
// a contract violation and panics.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("res: Value called on %s", r.stateName()))
	}
	return r.value
}

// Err returns the failure error. Calling it on a non-fail result is a
// contract violation and panics.
func (r Result[T]) Err() *Error {
	if r.err == nil {
		panic(fmt.Sprintf("res: Err called on %s", r.stateName()))
	}
	return r.err
}

// Get is the non-panicking accessor.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// ValueOr returns the success value or the fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

// ToMaybe widens the result into the three-state form; a failure stays
// a failure, it never collapses into None.
func (r Result[T]) ToMaybe() Maybe[T] {
	if r.isSuccess {
		return Maybe[T]{value: r.value, state: maybeSome}
	}
	if r.err != nil {
		return Maybe[T]{err: r.err, state: maybeFail}
	}
	return Maybe[T]{err: InternalError(), state: maybeFail}
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	if r.err != nil {
		return fmt.Sprintf("Fail(%s)", r.err)
	}
	return "Result(zero)"
}

func (r Result[T]) stateName() string {
	switch {
	case r.isSuccess:
		return "a Success result"
	case r.err != nil:
		return "a Fail result"
	default:
		return "a zero Result"
	}
}
