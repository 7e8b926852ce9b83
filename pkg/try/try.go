package try

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Try holds the outcome of a completed computation: either the value it
// produced (Success) or the fault that interrupted it (Failure). Instances
// are immutable; combinators derive new instances instead of mutating.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Success wraps an already-computed value.
func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps a fault. A nil (or typed-nil) err is replaced with
// ErrNilFailure so a failure never loses its fault.
func Failure[T any](err error) Try[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Try[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom rebinds a failure to another value type, keeping the fault
// and the instance metadata of the original.
func FailureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// To evaluates the thunk exactly once, synchronously, and classifies the
// outcome. A normal return with a nil error yields a Success; a non-nil
// error yields a Failure carrying that error unmodified; a panic inside the
// thunk yields a Failure carrying the panic payload as a *PanicError.
func To[T any](f func() (T, error)) (t Try[T]) {
	defer func() {
		if p := recover(); p != nil {
			t = Failure[T](toPanicError(p))
		}
	}()

	v, err := f()
	if !IsNil(err) {
		return Failure[T](err)
	}
	return Success(v)
}

// Apply is a synonym of To, kept for conformance with the Scala Try API.
func Apply[T any](f func() (T, error)) Try[T] {
	return To(f)
}

// From lifts the result of an ordinary Go call into a Try.
func From[T any](v T, err error) Try[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Failure[T](err)
}

// Value returns the wrapped value, or the zero value on a Failure.
func (t Try[T]) Value() T {
	return t.value
}

// Err returns the wrapped fault, or nil on a Success.
func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// Get decomposes the container positionally: (value, nil) for a Success,
// (zero, fault) for a Failure.
func (t Try[T]) Get() (T, error) {
	return t.value, t.err
}

// MustGet returns the wrapped value or re-raises the wrapped fault. It is
// the single operation that turns a stored fault back into a live panic;
// every other read is non-raising.
func (t Try[T]) MustGet() T {
	if t.IsFailure() {
		panic(t.err)
	}
	return t.value
}

// GetOrElse returns the wrapped value, or def on a Failure.
func (t Try[T]) GetOrElse(def T) T {
	if t.IsFailure() {
		return def
	}
	return t.value
}

// GetOrElseGet returns the wrapped value, or evaluates def on a Failure.
func (t Try[T]) GetOrElseGet(def func() T) T {
	if t.IsFailure() {
		return def()
	}
	return t.value
}

// Equal reports structural equality: same variant and equal payload.
// Instance metadata (id, creation time) does not participate.
func (t Try[T]) Equal(o Try[T]) bool {
	if t.isSuccess != o.isSuccess {
		return false
	}
	if t.isSuccess {
		return reflect.DeepEqual(t.value, o.value)
	}
	return equalErr(t.err, o.err)
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.err)
}
