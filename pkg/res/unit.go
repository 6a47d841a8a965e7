package res

// Unit is the payload of a value-less result.
type Unit struct{}

// UnitResult is the value-less two-state result: Success | Fail.
type UnitResult = Result[Unit]

// OK returns the successful value-less result.
func OK() UnitResult {
	return Result[Unit]{value: Unit{}, isSuccess: true}
}

// FailUnit wraps an error into a value-less result.
func FailUnit(err error) UnitResult {
	return Fail[Unit](err)
}

// ToUnit drops the payload of a result, keeping its state and error.
func ToUnit[T any](r Result[T]) UnitResult {
	if r.IsSuccess() {
		return OK()
	}
	return Result[Unit]{err: r.Err()}
}
