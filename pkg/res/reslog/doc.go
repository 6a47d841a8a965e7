// Package reslog adapts the structured error chain to zerolog. The core
// types stay log-free; collaborators opt in with Object for manual
// events or the TeeFail combinators to log failures mid-chain without
// altering the result.
package reslog
