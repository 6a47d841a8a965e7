// Package mchain provides a minimal fluent Chain[T] for synchronous
// composition of res.Maybe[T] values.
//
// It parallels the chain package but works over the three-way
// Some/None/Fail split:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose maybe-returning or error-returning functions
// - Map/Filter: transform the value or demote Some to None
// - Or/And: pick the first usable outcome / require all outcomes
// - Ensure: trigger side effects per state only
// - Finally: reduce to a concrete value via three handlers
//
// Chains use value receivers and never mutate; each step returns a new
// Chain.
package mchain
