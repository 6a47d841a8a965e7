// Package seq expresses sequence absence and multiplicity conditions
// through the sum types: FirstOrFail/SingleOrFail produce Result[T],
// FirstOrNone/LastOrNone/AtOrNone produce Maybe[T], and MapSlice folds
// a slice through a fallible selector with first-failure-wins
// semantics.
package seq
