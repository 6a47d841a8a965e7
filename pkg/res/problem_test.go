package res

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 404, DefaultStatus(404))
	assert.Equal(t, 404, DefaultStatus(-404))
	assert.Equal(t, 404, DefaultStatus(20404))
	assert.Equal(t, 500, DefaultStatus(0))
	assert.GreaterOrEqual(t, DefaultStatus(math.MinInt), 0)
}

func TestProblemFrom_ShapesError(t *testing.T) {
	t.Parallel()

	e := NotFound().
		WithIdentifier("id-9").
		WithExtension("userId", 42).
		WithInner(NewError("row missing").WithCode(410))

	p := ProblemFrom(e, nil)

	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, 404, p.Status)
	assert.Equal(t, e.Message(), p.Detail)
	assert.True(t, strings.HasPrefix(p.Instance, "urn:uuid:"))
	assert.Equal(t, "id-9", p.Extensions[ProblemExtIdentifier])
	assert.Equal(t, 42, p.Extensions["userId"])

	inner, ok := p.Extensions[ProblemExtInnerError].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "row missing", inner["detail"])
	assert.Equal(t, 410, inner["code"])
}

func TestProblemFrom_CustomMapperAndFreshInstance(t *testing.T) {
	t.Parallel()

	e := BadGateway()
	p1 := ProblemFrom(e, func(code int) int { return 599 })
	p2 := ProblemFrom(e, nil)

	assert.Equal(t, 599, p1.Status)
	assert.Equal(t, 502, p2.Status)
	assert.NotEqual(t, p1.Instance, p2.Instance)
}

func TestProblemFrom_NilErrorPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { ProblemFrom(nil, nil) })
}

func TestNoneProblem(t *testing.T) {
	t.Parallel()

	p := NoneProblem()
	assert.Equal(t, 404, p.Status)
	assert.Equal(t, "No value.", p.Detail)
}

func TestProblemFromResult(t *testing.T) {
	t.Parallel()

	v, p := ProblemFromResult(Success(3), nil)
	assert.Nil(t, p)
	assert.Equal(t, 3, v)

	_, p = ProblemFromResult(Fail[int](BadRequest()), nil)
	require.NotNil(t, p)
	assert.Equal(t, 400, p.Status)
}

func TestProblemFromMaybe(t *testing.T) {
	t.Parallel()

	v, p := ProblemFromMaybe(Some(3), nil)
	assert.Nil(t, p)
	assert.Equal(t, 3, v)

	_, p = ProblemFromMaybe(None[int](), nil)
	require.NotNil(t, p)
	assert.Equal(t, 404, p.Status)

	_, p = ProblemFromMaybe(FailMaybe[int](InternalError()), nil)
	require.NotNil(t, p)
	assert.Equal(t, 500, p.Status)
}
