package try

import (
	"errors"
	"fmt"
)

var (
	// ErrPredicateNotSatisfied marks a Filter rejection.
	ErrPredicateNotSatisfied = errors.New("predicate not satisfied")

	// ErrUnsupportedOperation marks an operation a variant cannot honor,
	// such as Failed on a Success.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrNilFailure substitutes for a nil error passed to Failure, so a
	// failure always carries a retrievable fault.
	ErrNilFailure = errors.New("failure constructed from nil error")
)

// PanicError carries a panic payload captured during thunk or combinator
// evaluation. The payload is preserved verbatim in Payload; when it is an
// error the usual errors.Is/As chain reaches it through Unwrap.
type PanicError struct {
	Payload any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Payload)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Payload.(error); ok {
		return err
	}
	return nil
}

func toPanicError(p any) error {
	return &PanicError{Payload: p}
}

func equalErr(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	if errors.Is(a, b) || errors.Is(b, a) {
		return true
	}
	return a.Error() == b.Error()
}
