package res

// Canonical error codes. The catalog is HTTP-aligned so that host
// translation (see Problem) is a direct mapping.
const (
	CodeBadRequest     = 400
	CodeNotFound       = 404
	CodeGone           = 410
	CodeUnexpectedNull = 410
	CodeCanceled       = 499
	CodeInternalError  = 500
	CodeBadGateway     = 502
)

// NotFound describes a value that could not be located.
func NotFound() *Error {
	return &Error{
		message: "The target resource could not be found.",
		title:   "Not Found",
		code:    CodeNotFound,
	}
}

// BadRequest describes input that failed validation.
func BadRequest() *Error {
	return &Error{
		message: "The operation cannot be processed due to a client error.",
		title:   "Bad Request",
		code:    CodeBadRequest,
	}
}

// Gone describes a value that was found to be missing after the fact.
func Gone() *Error {
	return &Error{
		message: "The target resource is no longer available.",
		title:   "Gone",
		code:    CodeGone,
	}
}

// UnexpectedNull describes a nil value where a value was promised.
func UnexpectedNull() *Error {
	return &Error{
		message: "The value was unexpectedly null.",
		title:   "Unexpected Null Value",
		code:    CodeUnexpectedNull,
	}
}

// Canceled describes an operation aborted by a cancellation signal.
func Canceled() *Error {
	return &Error{
		message: "The operation was canceled.",
		title:   "Canceled",
		code:    CodeCanceled,
	}
}

// InternalError is the default failure used when nothing more specific
// is known.
func InternalError() *Error {
	return &Error{
		message: DefaultErrorMessage,
		title:   "Internal Error",
		code:    CodeInternalError,
	}
}

// BadGateway describes an upstream-call failure.
func BadGateway() *Error {
	return &Error{
		message: "The response from the upstream service was invalid.",
		title:   "Bad Gateway",
		code:    CodeBadGateway,
	}
}

// NoValue is the canonical error produced when a Maybe's None state is
// converted to a Result failure.
func NoValue() *Error {
	return NotFound().WithMessage("No value.")
}
