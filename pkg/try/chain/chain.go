package chain

import (
	"github.com/ib-77/try3/pkg/try"
)

// Chain wraps a try.Try to enable fluent chaining
type Chain[T any] struct {
	result try.Try[T]
}

// Start creates a new chain from a try.Try
func Start[T any](result try.Try[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: try.Success(value),
	}
}

// FromThunk creates a new chain by evaluating a thunk
func FromThunk[T any](f func() (T, error)) *Chain[T] {
	return &Chain[T]{
		result: try.To(f),
	}
}

// Result returns the underlying try.Try
func (c *Chain[T]) Result() try.Try[T] {
	return c.result
}

// Then chains a function that returns try.Try[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) try.Try[U]) *Chain[U] {
	return &Chain[U]{
		result: try.FlatMap(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: try.Attempt(c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{
		result: try.Map(c.result, onSuccess),
	}
}

// Then chains a same-type function that returns try.Try[T]
func (c *Chain[T]) Then(onSuccess func(T) try.Try[T]) *Chain[T] {
	return &Chain[T]{
		result: c.result.FlatMap(onSuccess),
	}
}

// ThenTry chains a same-type function that returns (T, error)
func (c *Chain[T]) ThenTry(tryOnSuccess func(T) (T, error)) *Chain[T] {
	return &Chain[T]{
		result: try.Attempt(c.result, tryOnSuccess),
	}
}

// Map chains a same-type pure transformation
func (c *Chain[T]) Map(onSuccess func(T) T) *Chain[T] {
	return &Chain[T]{
		result: c.result.Map(onSuccess),
	}
}

// Filter guards the current result with a predicate
func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	return &Chain[T]{
		result: c.result.Filter(predicate),
	}
}

// Recover repairs a failed result with a fault-to-value function
func (c *Chain[T]) Recover(onFailure func(error) T) *Chain[T] {
	return &Chain[T]{
		result: c.result.Recover(onFailure),
	}
}

// Ensure performs side effects without changing the result. Nil handlers
// are skipped.
func (c *Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) *Chain[T] {
	try.Match(c.result, onSuccess, onFailure)
	return c
}

// Finally collapses the chain into a final value using try.Fold
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return try.Fold(c.result, onSuccess, onFailure)
}
