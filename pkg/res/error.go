package res

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// DefaultErrorMessage is substituted whenever an Error would otherwise
// carry an empty message.
const DefaultErrorMessage = "An error occurred."

// Error is an immutable, structured description of a failure. It flows
// through Result/Maybe chains as data; transformations always produce a
// new instance via the With* methods.
type Error struct {
	message    string
	title      string
	code       int
	identifier string
	stackTrace string
	inner      *Error
	ext        map[string]any
}

func NewError(message string) *Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &Error{message: message, title: "Error"}
}

func NewErrorf(format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// NewIdentifier returns a fresh unique error identifier.
func NewIdentifier() string {
	return uuid.NewString()
}

func (e *Error) clone() *Error {
	c := *e
	if e.ext != nil {
		c.ext = make(map[string]any, len(e.ext))
		for k, v := range e.ext {
			c.ext[k] = v
		}
	}
	return &c
}

func (e *Error) WithMessage(message string) *Error {
	c := e.clone()
	if message == "" {
		message = DefaultErrorMessage
	}
	c.message = message
	return c
}

func (e *Error) WithMessagef(format string, args ...any) *Error {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

func (e *Error) WithTitle(title string) *Error {
	c := e.clone()
	c.title = title
	return c
}

func (e *Error) WithCode(code int) *Error {
	c := e.clone()
	c.code = code
	return c
}

func (e *Error) WithIdentifier(identifier string) *Error {
	c := e.clone()
	c.identifier = identifier
	return c
}

// WithStackTrace captures the current call stack into the new instance.
// Capture happens only here; plain construction never walks the stack.
func (e *Error) WithStackTrace() *Error {
	return e.withStackSkip(2)
}

func (e *Error) withStackSkip(skip int) *Error {
	c := e.clone()
	c.stackTrace = captureStack(skip + 1)
	return c
}

func (e *Error) WithInner(inner *Error) *Error {
	c := e.clone()
	c.inner = inner
	return c
}

func (e *Error) WithExtension(key string, value any) *Error {
	c := e.clone()
	if c.ext == nil {
		c.ext = make(map[string]any, 1)
	}
	c.ext[key] = value
	return c
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Title() string {
	return e.title
}

// Code returns the numeric error code, 0 when unset.
func (e *Error) Code() int {
	return e.code
}

func (e *Error) Identifier() string {
	return e.identifier
}

func (e *Error) StackTrace() string {
	return e.stackTrace
}

func (e *Error) Inner() *Error {
	return e.inner
}

// Extension returns the auxiliary value stored under key, if any.
func (e *Error) Extension(key string) (any, bool) {
	v, ok := e.ext[key]
	return v, ok
}

// Extensions returns a copy of the auxiliary data map; mutating it does
// not affect the error.
func (e *Error) Extensions() map[string]any {
	if len(e.ext) == 0 {
		return nil
	}
	c := make(map[string]any, len(e.ext))
	for k, v := range e.ext {
		c[k] = v
	}
	return c
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes the cause chain to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e.inner == nil {
		return nil
	}
	return e.inner
}

// IsCanceled reports whether this error represents a mapped cancellation.
func (e *Error) IsCanceled() bool {
	return e.code == CodeCanceled
}

// Equal compares errors structurally: message, code, title, identifier,
// extensions and the full inner chain. Stack traces are capture-site
// snapshots and do not participate.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.message != other.message || e.code != other.code ||
		e.title != other.title || e.identifier != other.identifier {
		return false
	}
	if len(e.ext) != len(other.ext) {
		return false
	}
	for k, v := range e.ext {
		if ov, ok := other.ext[k]; !ok || !reflect.DeepEqual(ov, v) {
			return false
		}
	}
	return e.inner.Equal(other.inner)
}

// String renders the full cause chain, outermost first.
func (e *Error) String() string {
	var b strings.Builder
	for cur := e; cur != nil; cur = cur.inner {
		if cur != e {
			b.WriteString(" -> ")
		}
		b.WriteString(cur.title)
		if cur.code != 0 {
			fmt.Fprintf(&b, "(%d)", cur.code)
		}
		b.WriteString(": ")
		b.WriteString(cur.message)
	}
	return b.String()
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
