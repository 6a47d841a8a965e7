package reslog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/rail/pkg/res"
)

// view adapts a res.Error chain to zerolog's object marshaling.
type view struct {
	err *res.Error
}

// Object wraps an error for structured logging:
//
//	logger.Error().Object("error", reslog.Object(err)).Msg(...)
func Object(err *res.Error) zerolog.LogObjectMarshaler {
	return view{err: err}
}

func (v view) MarshalZerologObject(e *zerolog.Event) {
	if v.err == nil {
		return
	}
	e.Str("title", v.err.Title()).Str("message", v.err.Message())
	if v.err.Code() != 0 {
		e.Int("code", v.err.Code())
	}
	if v.err.Identifier() != "" {
		e.Str("identifier", v.err.Identifier())
	}
	if v.err.StackTrace() != "" {
		e.Str("stackTrace", v.err.StackTrace())
	}
	for k, val := range v.err.Extensions() {
		e.Interface(k, val)
	}
	if inner := v.err.Inner(); inner != nil {
		e.Object("inner", view{err: inner})
	}
}

// TeeFail logs a failure without altering the result.
func TeeFail[T any](ctx context.Context, logger zerolog.Logger, input res.Result[T]) res.Result[T] {
	if input.IsFail() {
		logFail(ctx, logger, input.Err())
	}
	return input
}

// TeeFailMaybe logs a failure without altering the maybe; None is not a
// failure and is not logged.
func TeeFailMaybe[T any](ctx context.Context, logger zerolog.Logger, input res.Maybe[T]) res.Maybe[T] {
	if input.IsFail() {
		logFail(ctx, logger, input.Err())
	}
	return input
}

func logFail(ctx context.Context, logger zerolog.Logger, err *res.Error) {
	ev := logger.Error()
	if err.IsCanceled() {
		ev = logger.Warn()
	}
	ev.Ctx(ctx).Object("error", view{err: err}).Msg(err.Message())
}
