package db

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/ib-77/rail/pkg/res"
	"github.com/ib-77/rail/pkg/res/flow"
)

// Extension keys the database error stores on the base res.Error so
// the extra fields round-trip through host translation.
const (
	ExtTransient = "db:transient"
	ExtSQLState  = "db:sqlState"
	ExtCommand   = "db:command"
)

// Error is the database variant of res.Error: the base structured error
// plus a transient-failure flag, an engine state code and the command
// that failed. It composes over *res.Error rather than subclassing it.
type Error struct {
	*res.Error
}

// NewError builds a database error. The variant fields live in the base
// error's extensions.
func NewError(message string, transient bool, sqlState, command string) Error {
	e := res.NewError(message).
		WithTitle("Database Error").
		WithCode(res.CodeInternalError).
		WithExtension(ExtTransient, transient).
		WithExtension(ExtSQLState, sqlState)
	if command != "" {
		e = e.WithExtension(ExtCommand, command)
	}
	return Error{Error: e}
}

// Transient reports whether retrying the command may succeed.
func (e Error) Transient() bool {
	v, ok := e.Extension(ExtTransient)
	if !ok {
		return false
	}
	t, _ := v.(bool)
	return t
}

// SQLState returns the engine's state code for the failure.
func (e Error) SQLState() string {
	v, ok := e.Extension(ExtSQLState)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Command returns the command that failed, if recorded.
func (e Error) Command() string {
	v, ok := e.Extension(ExtCommand)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// FromErr classifies a driver error into the database variant. SQLite
// busy/locked conditions are marked transient; anything else is a
// permanent failure. The original cause is preserved as the inner
// chain.
func FromErr(err error, command string) Error {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		transient := serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
		state := strconv.Itoa(int(serr.Code))
		if serr.ExtendedCode != 0 {
			state = strconv.Itoa(int(serr.ExtendedCode))
		}
		e := NewError(serr.Error(), transient, state, command)
		return Error{Error: e.WithInner(res.FromError(err))}
	}

	e := NewError(err.Error(), false, "", command)
	return Error{Error: e.WithInner(res.FromError(err))}
}

// Handler is a res.ErrorHandler that classifies driver errors for the
// given command.
func Handler(command string) res.ErrorHandler {
	return func(err error) *res.Error {
		return FromErr(err, command).Error
	}
}

// TryExec runs an exec producer and yields the affected row count, with
// driver errors classified through FromErr.
func TryExec(ctx context.Context, command string,
	exec func(ctx context.Context) (sql.Result, error)) res.Result[int64] {

	return res.TryResult(ctx, func(ctx context.Context) (int64, error) {
		r, err := exec(ctx)
		if err != nil {
			return 0, err
		}
		return r.RowsAffected()
	}, Handler(command))
}

// EnsureRowsAffected turns a structurally successful exec into a domain
// failure when the affected row count differs from the expectation.
func EnsureRowsAffected(ctx context.Context, r res.Result[int64], expected int64) res.Result[int64] {
	return flow.ToFailIf(ctx, r,
		func(ctx context.Context, affected int64) bool {
			return affected == expected
		},
		func(ctx context.Context, affected int64) *res.Error {
			return res.Gone().WithMessagef(
				"Expected %d rows to be affected, but was %d.", expected, affected)
		})
}
