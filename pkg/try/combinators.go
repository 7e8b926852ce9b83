package try

import "fmt"

// protect evaluates a Try-producing continuation, converting a panic into
// a Failure.
func protect[T any](f func() Try[T]) (t Try[T]) {
	defer func() {
		if p := recover(); p != nil {
			t = Failure[T](toPanicError(p))
		}
	}()
	return f()
}

// Map transforms the successful value with a same-type function. A panic
// raised by onSuccess becomes a Failure; a Failure passes through unchanged
// without invoking onSuccess.
func (t Try[T]) Map(onSuccess func(T) T) Try[T] {
	if t.IsFailure() {
		return t
	}
	return To(func() (T, error) {
		return onSuccess(t.value), nil
	})
}

// FlatMap composes a same-type function that already returns a Try. The
// continuation's result is returned directly, never double-wrapped.
func (t Try[T]) FlatMap(onSuccess func(T) Try[T]) Try[T] {
	if t.IsFailure() {
		return t
	}
	return protect(func() Try[T] {
		return onSuccess(t.value)
	})
}

// Filter keeps a Success whose value satisfies the predicate; otherwise it
// yields a Failure wrapping ErrPredicateNotSatisfied. A Failure passes
// through unchanged.
func (t Try[T]) Filter(predicate func(T) bool) Try[T] {
	if t.IsFailure() {
		return t
	}
	return protect(func() Try[T] {
		if !predicate(t.value) {
			return Failure[T](ErrPredicateNotSatisfied)
		}
		return t
	})
}

// Recover maps the fault of a Failure to a value. A panic raised by
// onFailure becomes a new Failure; a Success passes through unchanged.
func (t Try[T]) Recover(onFailure func(error) T) Try[T] {
	if t.IsSuccess() {
		return t
	}
	return To(func() (T, error) {
		return onFailure(t.err), nil
	})
}

// RecoverWith maps the fault of a Failure to a new Try.
func (t Try[T]) RecoverWith(onFailure func(error) Try[T]) Try[T] {
	if t.IsSuccess() {
		return t
	}
	return protect(func() Try[T] {
		return onFailure(t.err)
	})
}

// ForEach applies a side effect to the successful value and nothing else.
// It is a side-effect hook, not a safety boundary: a panic raised by
// onSuccess propagates to the caller.
func (t Try[T]) ForEach(onSuccess func(T)) {
	if t.IsSuccess() {
		onSuccess(t.value)
	}
}

// OrElse returns this Try if it is a Success, otherwise the alternative.
func (t Try[T]) OrElse(alternative Try[T]) Try[T] {
	if t.IsSuccess() {
		return t
	}
	return alternative
}

// Failed inverts the container: the fault of a Failure becomes the value
// of a Success. On a Success there is no fault to expose, so the result is
// a Failure wrapping ErrUnsupportedOperation.
func (t Try[T]) Failed() Try[error] {
	if t.IsFailure() {
		return Success(t.err)
	}
	return Failure[error](fmt.Errorf("%w: Failed on Success", ErrUnsupportedOperation))
}

// Map transforms a successful value to a new type. Methods cannot introduce
// type parameters, so the type-changing combinators live at package level.
func Map[In, Out any](t Try[In], onSuccess func(In) Out) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	return To(func() (Out, error) {
		return onSuccess(t.value), nil
	})
}

// FlatMap composes a function producing a Try of a new type.
func FlatMap[In, Out any](t Try[In], onSuccess func(In) Try[Out]) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	return protect(func() Try[Out] {
		return onSuccess(t.value)
	})
}

// Attempt calls a function returning (Out, error) on the successful value
// and classifies its outcome, converting an error or panic into a Failure.
func Attempt[In, Out any](t Try[In], onSuccess func(In) (Out, error)) Try[Out] {
	if t.IsFailure() {
		return FailureFrom[In, Out](t)
	}
	return To(func() (Out, error) {
		return onSuccess(t.value)
	})
}

// Fold collapses the container to a single value via one handler per
// variant. Exactly one handler runs.
func Fold[In, Out any](t Try[In],
	onSuccess func(In) Out,
	onFailure func(err error) Out) Out {

	if t.IsSuccess() {
		return onSuccess(t.value)
	}
	return onFailure(t.err)
}

// Match decomposes the container for side effects, dispatching on the
// variant tag with one positional argument each. Nil handlers are skipped.
func Match[T any](t Try[T], onSuccess func(T), onFailure func(err error)) {
	if t.IsSuccess() {
		if onSuccess != nil {
			onSuccess(t.value)
		}
		return
	}
	if onFailure != nil {
		onFailure(t.err)
	}
}

// Transform maps both variants to a new Try, with panic capture on either
// handler.
func Transform[In, Out any](t Try[In],
	onSuccess func(In) Try[Out],
	onFailure func(err error) Try[Out]) Try[Out] {

	if t.IsSuccess() {
		return protect(func() Try[Out] {
			return onSuccess(t.value)
		})
	}
	return protect(func() Try[Out] {
		return onFailure(t.err)
	})
}
