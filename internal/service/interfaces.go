package service

import (
	"context"

	"github.com/localrail/railbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_services.go -package=mock

// TrainCatalog owns the list of trains: route search and seat-grid access.
//
// Every method reads the current on-disk state; callers must treat each seat
// check as fresh and never reuse a previously returned train for decisions.
type TrainCatalog interface {
	// Search returns the trains serving the route from source to destination.
	// Matching is case-insensitive and whitespace-trimmed, and the source must
	// precede the destination in the train's station order. An empty result
	// is not an error.
	Search(ctx context.Context, source, destination string) ([]models.Train, error)

	// GetTrain returns the current state of one train.
	GetTrain(ctx context.Context, trainID string) (models.Train, error)

	// Seats returns the train's current seat grid.
	Seats(ctx context.Context, trainID string) ([][]int, error)

	// SetSeat writes an occupancy value into one grid cell and persists the
	// train collection immediately.
	SetSeat(ctx context.Context, trainID string, row, col, value int) error

	// Upsert replaces-or-inserts a train by ID and persists immediately.
	Upsert(ctx context.Context, train models.Train) error
}

// UserDirectory owns the registered users: signup, credential checks and
// per-user ticket-list updates.
type UserDirectory interface {
	// SignUp registers a new user with the given display name and plaintext
	// password. The password is bcrypt-hashed before persisting. The returned
	// user is considered logged in by the caller.
	SignUp(ctx context.Context, name, password string) (models.User, error)

	// VerifyCredentials authenticates a user by name and plaintext password.
	// Returns ErrAuthFailed when the name is unknown or the password is wrong.
	VerifyCredentials(ctx context.Context, name, password string) (models.User, error)

	// FindByName looks a user up without any authentication side effect.
	FindByName(ctx context.Context, name string) (models.User, error)

	// FindByID looks a user up by ID.
	FindByID(ctx context.Context, userID string) (models.User, error)

	// UpdateTickets replaces a user's ticket list and persists it.
	UpdateTickets(ctx context.Context, userID string, tickets []models.Ticket) error
}

// BookingCoordinator orchestrates a booking or cancellation as one logical
// operation spanning the train catalog and the user directory. It enforces
// the invariant that a seat is occupied if and only if a matching ticket
// exists, compensating the seat mutation when ticket persistence fails.
type BookingCoordinator interface {
	// Book reserves the seat (row, col) on the given train for the user and
	// returns the created ticket.
	Book(ctx context.Context, userID, trainID string, row, col int) (models.Ticket, error)

	// Cancel frees the seat referenced by the ticket and removes the ticket
	// from the user's list, in that order.
	Cancel(ctx context.Context, userID, ticketID string) error

	// Bookings returns the user's current tickets.
	Bookings(ctx context.Context, userID string) ([]models.Ticket, error)
}
