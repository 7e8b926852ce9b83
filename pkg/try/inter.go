package try

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome defines the read contract shared by both variants of Try.
type Outcome[T any] interface {
	ValueProvider[T]
	// Err returns the captured fault if the computation failed
	Err() error
	// Get returns the value and the fault positionally
	Get() (T, error)
	// IsSuccess returns true if the computation completed normally
	IsSuccess() bool
	// IsFailure returns true if the computation faulted
	IsFailure() bool
}
