package service

import "errors"

// Sentinel errors of the service layer. The console shell matches these with
// [errors.Is] to print a distinguishable message for each failure; none of
// them is ever allowed to escalate into a process crash.
var (
	// ErrNotAuthenticated is returned when an operation requiring a logged-in
	// user is attempted without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthFailed is returned on login when the name is unknown or the
	// password does not match. The two cases are deliberately not
	// distinguishable to the caller.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrInvalidInput is returned when a required argument is blank or
	// malformed before any state is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSeatTaken is returned when the targeted seat is already occupied.
	// Neither the grid nor any ticket list is mutated in that case.
	ErrSeatTaken = errors.New("seat is already taken")

	// ErrTicketNotFound is returned when a cancellation names a ticket the
	// current user does not own.
	ErrTicketNotFound = errors.New("ticket was not found")
)
