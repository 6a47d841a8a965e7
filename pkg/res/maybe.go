package res

import "fmt"

type maybeState uint8

const (
	maybeZero maybeState = iota
	maybeSome
	maybeNone
	maybeFail
)

// Maybe is a three-state sum type: Some carrying a value, None meaning
// "successfully determined there is no value", or Fail carrying an
// *Error. The zero Maybe is invalid; always construct through Some,
// None or FailMaybe.
type Maybe[T any] struct {
	value T
	err   *Error
	state maybeState
}

// Some wraps a value. A nil-equivalent value never produces Some: it
// yields Fail(UnexpectedNull). Use None for deliberate absence.
func Some[T any](value T) Maybe[T] {
	if IsNil(value) {
		return Maybe[T]{err: UnexpectedNull(), state: maybeFail}
	}
	return Maybe[T]{value: value, state: maybeSome}
}

// None is the valid, error-free absence of a value.
func None[T any]() Maybe[T] {
	return Maybe[T]{state: maybeNone}
}

// FailMaybe wraps an error, converting through FromError. A nil err is
// a contract violation.
func FailMaybe[T any](err error) Maybe[T] {
	if IsNil(err) {
		panic("res: FailMaybe called with a nil error")
	}
	return Maybe[T]{err: FromError(err), state: maybeFail}
}

func (m Maybe[T]) IsSome() bool {
	return m.state == maybeSome
}

func (m Maybe[T]) IsNone() bool {
	return m.state == maybeNone
}

func (m Maybe[T]) IsFail() bool {
	return m.state == maybeFail
}

func (m Maybe[T]) IsCanceled() bool {
	return m.state == maybeFail && m.err.IsCanceled()
}

// Value returns the Some value. Calling it on None or Fail is a
// contract violation and panics.
func (m Maybe[T]) Value() T {
	if m.state != maybeSome {
		panic(fmt.Sprintf("res: Value called on %s", m.stateName()))
	}
	return m.value
}

// Err returns the failure error. Calling it on any other state is a
// contract violation and panics.
func (m Maybe[T]) Err() *Error {
	if m.state != maybeFail {
		panic(fmt.Sprintf("res: Err called on %s", m.stateName()))
	}
	return m.err
}

// Get is the non-panicking accessor; ok is true only for Some.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.state == maybeSome
}

// ValueOr returns the Some value or the fallback.
func (m Maybe[T]) ValueOr(fallback T) T {
	if m.state == maybeSome {
		return m.value
	}
	return fallback
}

// ToResult narrows into the two-state form. None becomes the canonical
// NoValue failure; an existing failure flows through unchanged.
func (m Maybe[T]) ToResult() Result[T] {
	switch m.state {
	case maybeSome:
		return Result[T]{value: m.value, isSuccess: true}
	case maybeNone:
		return Result[T]{err: NoValue()}
	case maybeFail:
		return Result[T]{err: m.err}
	default:
		return Result[T]{err: InternalError()}
	}
}

func (m Maybe[T]) String() string {
	switch m.state {
	case maybeSome:
		return fmt.Sprintf("Some(%v)", m.value)
	case maybeNone:
		return "None"
	case maybeFail:
		return fmt.Sprintf("Fail(%s)", m.err)
	default:
		return "Maybe(zero)"
	}
}

func (m Maybe[T]) stateName() string {
	switch m.state {
	case maybeSome:
		return "a Some maybe"
	case maybeNone:
		return "a None maybe"
	case maybeFail:
		return "a Fail maybe"
	default:
		return "a zero Maybe"
	}
}
