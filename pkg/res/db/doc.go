// Package db carries the database variant of the structured error
// (transient flag, engine state code, failed command) and small helpers
// for exec-style calls: TryExec converts a driver call into a
// Result[int64] of affected rows, and EnsureRowsAffected turns an
// unexpected row count into a domain failure.
package db
