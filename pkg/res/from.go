package res

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// IsNil reports whether v is nil or a typed nil hiding behind an
// interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsCancellation reports whether err is a context cancellation or
// deadline signal.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// FromError converts any error into the structured form. An *Error
// passes through untouched. Cancellation-shaped errors map to the
// Canceled catalog entry. Anything else becomes an Error titled with
// the Go type name, with the Unwrap chain walked recursively into the
// inner chain.
func FromError(err error) *Error {
	if IsNil(err) {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	if IsCancellation(err) {
		return Canceled().WithMessage(err.Error())
	}

	return &Error{
		message: nonEmpty(err.Error()),
		title:   fmt.Sprintf("%T", err),
		code:    CodeInternalError,
		inner:   FromError(unwrapOne(err)),
	}
}

// unwrapOne returns the next cause. The inner chain is singly linked,
// so a multi-error join contributes its first branch.
func unwrapOne(err error) error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		if joined := u.Unwrap(); len(joined) > 0 {
			return joined[0]
		}
		return nil
	}
	return errors.Unwrap(err)
}

func nonEmpty(message string) string {
	if message == "" {
		return DefaultErrorMessage
	}
	return message
}
