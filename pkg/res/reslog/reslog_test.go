package reslog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rail/pkg/res"
)

func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}

func TestObject_MarshalsChain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	err := res.BadGateway().
		WithIdentifier("call-3").
		WithExtension("upstream", "billing").
		WithInner(res.NewError("tcp reset"))

	logger.Error().Object("error", Object(err)).Msg("request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	eo, ok := entry["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bad Gateway", eo["title"])
	assert.Equal(t, float64(502), eo["code"])
	assert.Equal(t, "call-3", eo["identifier"])
	assert.Equal(t, "billing", eo["upstream"])

	inner, ok := eo["inner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tcp reset", inner["message"])
}

func TestTeeFail_LogsOnlyFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	out := TeeFail(ctx, logger, res.Success(1))
	assert.True(t, out.IsSuccess())
	assert.Empty(t, buf.Bytes())

	e := res.NotFound()
	out = TeeFail(ctx, logger, res.Fail[int](e))
	require.True(t, out.IsFail())
	assert.Same(t, e, out.Err())
	assert.Contains(t, buf.String(), "Not Found")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestTeeFail_CanceledLogsAsWarning(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	TeeFail(ctx, logger, res.Fail[int](res.Canceled()))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

type requestKey struct{}

type ctxCaptureHook struct {
	got *any
}

func (h ctxCaptureHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	*h.got = e.GetCtx().Value(requestKey{})
}

func TestTeeFail_ForwardsContextToEvent(t *testing.T) {
	t.Parallel()

	var got any
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(ctxCaptureHook{got: &got})

	ctx := context.WithValue(context.Background(), requestKey{}, "req-1")
	TeeFail(ctx, logger, res.Fail[int](res.NotFound()))

	assert.Equal(t, "req-1", got)
}

func TestTeeFailMaybe_NoneIsNotLogged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	out := TeeFailMaybe(ctx, logger, res.None[int]())
	assert.True(t, out.IsNone())
	assert.Empty(t, buf.Bytes())

	TeeFailMaybe(ctx, logger, res.FailMaybe[int](res.InternalError()))
	assert.Contains(t, buf.String(), "Internal Error")
}
