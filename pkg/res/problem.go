package res

import (
	"github.com/google/uuid"
)

// Problem is the host-translation shape of an Error: a problem-details
// record a collaborator (an HTTP adapter, a UI layer) can emit directly.
type Problem struct {
	Type       string         `json:"type,omitempty"`
	Title      string         `json:"title,omitempty"`
	Status     int            `json:"status,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Extension keys populated by ProblemFrom.
const (
	ProblemExtIdentifier = "errorIdentifier"
	ProblemExtStackTrace = "errorStackTrace"
	ProblemExtInnerError = "innerError"
)

// StatusMapper derives a transport status from an error code.
type StatusMapper func(code int) int

// DefaultStatus maps a code to abs(code) % 1000, falling back to 500
// for unset codes.
func DefaultStatus(code int) int {
	if code == 0 {
		return CodeInternalError
	}
	code %= 1000
	if code < 0 {
		code = -code
	}
	return code
}

// ProblemFrom translates an error chain into a Problem. Each call
// produces a fresh per-occurrence instance URN. A nil mapper uses
// DefaultStatus.
func ProblemFrom(err *Error, mapper StatusMapper) Problem {
	if err == nil {
		panic("res: ProblemFrom called with a nil error")
	}
	if mapper == nil {
		mapper = DefaultStatus
	}

	ext := err.Extensions()
	if ext == nil {
		ext = make(map[string]any)
	}
	if err.Identifier() != "" {
		ext[ProblemExtIdentifier] = err.Identifier()
	}
	if err.StackTrace() != "" {
		ext[ProblemExtStackTrace] = err.StackTrace()
	}
	if inner := err.Inner(); inner != nil {
		ext[ProblemExtInnerError] = errorAsMap(inner)
	}

	return Problem{
		Type:       err.Title(),
		Title:      err.Title(),
		Status:     mapper(err.Code()),
		Detail:     err.Message(),
		Instance:   "urn:uuid:" + uuid.NewString(),
		Extensions: ext,
	}
}

// NoneProblem is the canonical translation of a None outcome.
func NoneProblem() Problem {
	return ProblemFrom(NoValue(), nil)
}

// ProblemFromResult destructures a result into either its success value
// or a Problem.
func ProblemFromResult[T any](r Result[T], mapper StatusMapper) (T, *Problem) {
	if r.IsSuccess() {
		return r.Value(), nil
	}
	p := ProblemFrom(r.Err(), mapper)
	var zero T
	return zero, &p
}

// ProblemFromMaybe destructures a maybe into its value, or a Problem
// for both None (the canonical NoValue problem) and Fail.
func ProblemFromMaybe[T any](m Maybe[T], mapper StatusMapper) (T, *Problem) {
	var zero T
	switch {
	case m.IsSome():
		return m.Value(), nil
	case m.IsNone():
		p := NoneProblem()
		return zero, &p
	default:
		p := ProblemFrom(m.Err(), mapper)
		return zero, &p
	}
}

func errorAsMap(e *Error) map[string]any {
	m := map[string]any{
		"title":  e.Title(),
		"detail": e.Message(),
	}
	if e.Code() != 0 {
		m["code"] = e.Code()
	}
	if e.Identifier() != "" {
		m[ProblemExtIdentifier] = e.Identifier()
	}
	if e.StackTrace() != "" {
		m[ProblemExtStackTrace] = e.StackTrace()
	}
	for k, v := range e.Extensions() {
		m[k] = v
	}
	if e.Inner() != nil {
		m[ProblemExtInnerError] = errorAsMap(e.Inner())
	}
	return m
}
