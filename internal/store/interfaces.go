package store

import (
	"context"

	"github.com/localrail/railbook/models"
)

// TrainRepository is the data-access layer for the trains collection.
// Every read hits the backing file and every mutation persists immediately;
// there is no caching layer between callers and disk.
type TrainRepository interface {
	// List returns the current on-disk train collection.
	List(ctx context.Context) ([]models.Train, error)

	// GetByID returns the train with the given ID or ErrTrainNotFound.
	GetByID(ctx context.Context, trainID string) (models.Train, error)

	// Upsert replaces the train with the same ID, or appends it when absent,
	// and persists the collection.
	Upsert(ctx context.Context, train models.Train) error

	// SetSeat writes value into cell (row, col) of the train's seat grid and
	// persists the collection. Returns ErrTrainNotFound or ErrSeatOutOfRange
	// without mutating anything when validation fails.
	SetSeat(ctx context.Context, trainID string, row, col, value int) error
}

// UserRepository is the data-access layer for the users collection.
type UserRepository interface {
	// List returns all registered users.
	List(ctx context.Context) ([]models.User, error)

	// FindByName returns the user with the given display name or ErrUserNotFound.
	FindByName(ctx context.Context, name string) (models.User, error)

	// FindByID returns the user with the given ID or ErrUserNotFound.
	FindByID(ctx context.Context, userID string) (models.User, error)

	// Create appends the user and persists; returns ErrUserAlreadyExists when
	// the display name is already taken.
	Create(ctx context.Context, user models.User) (models.User, error)

	// UpdateTickets replaces the ticket list of the user with the given ID
	// and persists. Returns ErrUserNotFound when the user is absent.
	UpdateTickets(ctx context.Context, userID string, tickets []models.Ticket) error
}
