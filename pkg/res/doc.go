// Package res defines the sum types at the heart of the library:
// Result[T] (Success | Fail), the value-less UnitResult, and Maybe[T]
// (Some | None | Fail), together with the structured Error that flows
// through them.
//
// Failure is data, never a thrown signal: producers are wrapped at the
// TryResult/TryMaybe/TryUnit boundary, which converts a returned error
// or a recovered panic into a Fail and a context cancellation into the
// canonical Canceled error. Everything downstream operates purely on
// the sum types.
//
// Key constructs:
// - Success/Fail, OK/FailUnit, Some/None/FailMaybe: constructors
// - Error + canonical catalog (NotFound, BadRequest, Gone, ...)
// - FromError: error -> *Error conversion walking the Unwrap chain
// - TryResult/TryMaybe/TryUnit: the only catch boundary
// - Problem: host-translation shape for collaborators
//
// Combinators live in package flow; fluent wrappers in chain and
// mchain; async forwarding in future.
package res
