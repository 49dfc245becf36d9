package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTrainNotFound is returned when no train with the requested ID exists
	// in the trains collection.
	ErrTrainNotFound = errors.New("train was not found")

	// ErrUserNotFound is returned when a lookup by name or ID matches no
	// registered user.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserAlreadyExists is returned when signup is attempted with a name
	// that is already registered. Names are unique across users.
	ErrUserAlreadyExists = errors.New("user name already exists")

	// ErrSeatOutOfRange is returned when seat coordinates fall outside the
	// train's seat grid. The grid is never mutated in that case.
	ErrSeatOutOfRange = errors.New("seat coordinates out of range")
)
