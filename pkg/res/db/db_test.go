package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/res"
)

type fakeExecResult struct {
	rows int64
	err  error
}

func (r fakeExecResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeExecResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestNewError_VariantFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	e := NewError("deadlock detected", true, "40001", "UPDATE accounts")

	assert.True(t, e.Transient())
	assert.Equal(t, "40001", e.SQLState())
	assert.Equal(t, "UPDATE accounts", e.Command())
	assert.Equal(t, "deadlock detected", e.Message())
	assert.Equal(t, "Database Error", e.Title())

	// the variant fields survive host translation through extensions
	p := res.ProblemFrom(e.Error, nil)
	assert.Equal(t, true, p.Extensions[ExtTransient])
	assert.Equal(t, "40001", p.Extensions[ExtSQLState])
	assert.Equal(t, "UPDATE accounts", p.Extensions[ExtCommand])
}

func TestFromErr_ClassifiesSQLite(t *testing.T) {
	t.Parallel()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	e := FromErr(busy, "INSERT INTO jobs")
	assert.True(t, e.Transient())
	assert.NotEmpty(t, e.SQLState())
	assert.Equal(t, "INSERT INTO jobs", e.Command())
	require.NotNil(t, e.Inner())

	locked := sqlite3.Error{Code: sqlite3.ErrLocked}
	assert.True(t, FromErr(locked, "").Transient())

	constraint := sqlite3.Error{Code: sqlite3.ErrConstraint}
	assert.False(t, FromErr(constraint, "").Transient())

	wrapped := fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrBusy})
	assert.True(t, FromErr(wrapped, "").Transient())
}

func TestFromErr_GenericError(t *testing.T) {
	t.Parallel()

	e := FromErr(errors.New("connection refused"), "SELECT 1")
	assert.False(t, e.Transient())
	assert.Empty(t, e.SQLState())
	assert.Equal(t, "SELECT 1", e.Command())
	assert.Equal(t, "connection refused", e.Message())
}

func TestTryExec(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := TryExec(ctx, "UPDATE users", func(ctx context.Context) (sql.Result, error) {
		return fakeExecResult{rows: 3}, nil
	})
	require.True(t, r.IsSuccess())
	assert.Equal(t, int64(3), r.Value())

	r = TryExec(ctx, "UPDATE users", func(ctx context.Context) (sql.Result, error) {
		return nil, sqlite3.Error{Code: sqlite3.ErrBusy}
	})
	require.True(t, r.IsFail())
	transient, ok := r.Err().Extension(ExtTransient)
	require.True(t, ok)
	assert.Equal(t, true, transient)
}

func TestEnsureRowsAffected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := EnsureRowsAffected(ctx, res.Success(int64(1)), 1)
	assert.True(t, ok.IsSuccess())

	failed := EnsureRowsAffected(ctx, res.Success(int64(1)), 2)
	require.True(t, failed.IsFail())
	assert.Equal(t, "Expected 2 rows to be affected, but was 1.", failed.Err().Message())

	e := res.BadGateway()
	passthrough := EnsureRowsAffected(ctx, res.Fail[int64](e), 2)
	require.True(t, passthrough.IsFail())
	assert.Same(t, e, passthrough.Err())
}
