package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/res"
)

func TestMapMaybe_ThreeWaySplit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, in int) int { return in * 2 }

	out := MapMaybe(ctx, res.Some(4), double)
	require.True(t, out.IsSome())
	assert.Equal(t, 8, out.Value())

	called := false
	out = MapMaybe(ctx, res.None[int](), func(ctx context.Context, in int) int {
		called = true
		return 0
	})
	assert.True(t, out.IsNone())
	assert.False(t, called)

	e := res.NotFound()
	out = MapMaybe(ctx, res.FailMaybe[int](e), double)
	require.True(t, out.IsFail())
	assert.Same(t, e, out.Err())
}

func TestSwitchMaybe_NoneNeverInvokesSelector(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := SwitchMaybe(ctx, res.None[int](), func(ctx context.Context, in int) res.Maybe[string] {
		called = true
		return res.Some("x")
	})

	assert.True(t, out.IsNone())
	assert.False(t, called)
}

func TestSwitchMaybe_SomeAndFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := SwitchMaybe(ctx, res.Some(2), func(ctx context.Context, in int) res.Maybe[string] {
		return res.Some("two")
	})
	require.True(t, out.IsSome())
	assert.Equal(t, "two", out.Value())

	e := res.BadGateway()
	out = SwitchMaybe(ctx, res.FailMaybe[int](e), func(ctx context.Context, in int) res.Maybe[string] {
		return res.Some("never")
	})
	require.True(t, out.IsFail())
	assert.Same(t, e, out.Err())
}

func TestFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Filter(ctx, res.Some(5), func(ctx context.Context, in int) bool { return in > 10 })
	assert.True(t, out.IsNone())

	out = Filter(ctx, res.Some(5), func(ctx context.Context, in int) bool { return in > 0 })
	require.True(t, out.IsSome())
	assert.Equal(t, 5, out.Value())

	e := res.NotFound()
	out = Filter(ctx, res.FailMaybe[int](e), func(ctx context.Context, in int) bool { return true })
	require.True(t, out.IsFail())
	assert.Same(t, e, out.Err())
}

func TestRecoverMaybe_OnlyOnFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := RecoverMaybe(ctx, res.FailMaybe[int](res.NotFound()),
		func(ctx context.Context, err *res.Error) int { return 7 })
	require.True(t, out.IsSome())
	assert.Equal(t, 7, out.Value())

	called := false
	out = RecoverMaybe(ctx, res.None[int](), func(ctx context.Context, err *res.Error) int {
		called = true
		return 7
	})
	assert.True(t, out.IsNone())
	assert.False(t, called)
}

func TestOrElse_OnlyOnNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := OrElse(ctx, res.None[int](), func(ctx context.Context) int { return 3 })
	require.True(t, out.IsSome())
	assert.Equal(t, 3, out.Value())

	out = OrElse(ctx, res.Some(1), func(ctx context.Context) int { return 3 })
	assert.Equal(t, 1, out.Value())

	e := res.NotFound()
	out = OrElse(ctx, res.FailMaybe[int](e), func(ctx context.Context) int { return 3 })
	assert.Same(t, e, out.Err())
}

func TestTryMaybeCombinator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := TryMaybe(ctx, res.Some(2), func(ctx context.Context, in int) (*int, error) {
		return nil, nil
	})
	assert.True(t, out.IsNone())

	out2 := TryMaybe(ctx, res.Some(2), func(ctx context.Context, in int) (int, error) {
		return 0, errors.New("lookup failed")
	})
	require.True(t, out2.IsFail())
	assert.Equal(t, "lookup failed", out2.Err().Message())
}

func TestAlwaysMaybe_RunsOnEveryState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	runs := 0
	cleanup := func(ctx context.Context) { runs++ }

	AlwaysMaybe(ctx, res.Some(1), cleanup)
	AlwaysMaybe(ctx, res.None[int](), cleanup)
	AlwaysMaybe(ctx, res.FailMaybe[int](res.NotFound()), cleanup)
	assert.Equal(t, 3, runs)
}

func TestFinallyMaybe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSome := func(ctx context.Context, in int) string { return "some" }
	onNone := func(ctx context.Context) string { return "none" }
	onFail := func(ctx context.Context, err *res.Error) string { return "fail" }

	assert.Equal(t, "some", FinallyMaybe(ctx, res.Some(1), onSome, onNone, onFail))
	assert.Equal(t, "none", FinallyMaybe(ctx, res.None[int](), onSome, onNone, onFail))
	assert.Equal(t, "fail", FinallyMaybe(ctx, res.FailMaybe[int](res.NotFound()), onSome, onNone, onFail))

	assert.Panics(t, func() { FinallyMaybe(ctx, res.Some(1), onSome, nil, onFail) })
}

func TestRoundTrip_ValueThroughMaybe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	value := "payload"
	got := FinallyMaybe(ctx, res.Some(value),
		func(ctx context.Context, v string) string { return v },
		func(ctx context.Context) string { return "" },
		func(ctx context.Context, err *res.Error) string { return "" })

	assert.Equal(t, value, got)
}
