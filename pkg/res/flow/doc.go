// Package flow contains single-value, synchronous combinators that
// operate on res.Result[T] and res.Maybe[T]. These functions form the
// core building blocks for error-aware pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map/MapMaybe: transform the success/some value (In -> Out)
// - Switch/SwitchMaybe: bind an operation that can itself fail
// - Validate/AndValidate/ToFailIf: turn a success into a domain failure
// - Filter: turn Some into None when a predicate rejects the value
// - Recover/RecoverMaybe/OrElse: compute fallbacks for Fail/None
// - Tee/TeeFail/DoubleTee/Always: side effects without altering state
// - Try/TryMaybe: convert a returned error to a failure mid-chain
// - Finally/FinallyUnit/FinallyMaybe: destructure into a final value
//
// Every combinator returns a new value; a failure's error flows through
// Map and Switch unchanged, and nothing here ever converts a failure
// back into a thrown signal.
package flow
