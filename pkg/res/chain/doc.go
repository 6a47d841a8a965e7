// Package chain provides a fluent wrapper around res.Result[T]
// for building synchronous railway chains using flow primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate/ToFailIf: turn a success into a domain failure
// - Recover: compute a fallback for a failure
// - Ensure/Always: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
