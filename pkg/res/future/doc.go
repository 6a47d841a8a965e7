// Package future forwards an already-async producer's completion into
// the sum types. A future here is just a channel carrying exactly one
// res.Result or res.Maybe; the package awaits it and applies the
// synchronous flow combinators on arrival.
//
// Common usage:
// - Result/Maybe: run a producer and get its single completion
// - Await/AwaitMaybe: receive a completion, mapping ctx.Done to Canceled
// - Map/Switch/Try: lift flow combinators over a pending completion
// - Finally/FinallyMaybe: block and destructure
//
// There is no worker pool, no fan-out and no scheduling beyond the one
// goroutine that forwards each completion.
package future
