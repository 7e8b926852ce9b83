// Package chain provides a fluent wrapper around try.Try[T]
// for building synchronous success/failure pipelines.
//
// It composes the core combinators behind a convenient Chain[T] type. This
// enables ergonomic pipelines without dealing directly with branching
// results at each step.
//
// Key operations:
// - Start/FromValue/FromThunk: begin a chain from a Try[T], a value, or a thunk
// - Then: switch to a new Try[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Filter/Recover: guard or repair the current result
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
