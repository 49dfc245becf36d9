package service

import (
	"context"
	"fmt"
	"time"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/utils"
	"github.com/localrail/railbook/models"
)

// bookingCoordinator is the concrete implementation of BookingCoordinator.
//
// A booking is a two-entity write (train grid, then user ticket list) without
// a transaction around it. The coordinator keeps the two consistent by strict
// ordering plus a compensating action: the seat is committed first and rolled
// back if the ticket cannot be persisted. Cancellation runs the mirror order,
// freeing the seat before touching the ticket list, so that an interruption
// leaves at worst a ticket pointing at a free seat — recoverable — instead of
// an occupied seat no ticket accounts for.
type bookingCoordinator struct {
	catalog       TrainCatalog
	directory     UserDirectory
	uuidGenerator *utils.UUIDGenerator
	now           func() time.Time
	logger        *logger.Logger
}

// NewBookingCoordinator constructs a BookingCoordinator spanning the given
// catalog and directory.
func NewBookingCoordinator(catalog TrainCatalog, directory UserDirectory, logger *logger.Logger) BookingCoordinator {
	return &bookingCoordinator{
		catalog:       catalog,
		directory:     directory,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

// Book reserves seat (row, col) on the train for the user.
//
// Stages run strictly in order:
//
//  1. the caller must be authenticated;
//  2. the train is re-read from the catalog — a train object the caller got
//     from an earlier search may be stale, another cancellation could have
//     changed occupancy since;
//  3. coordinates are validated against the fresh grid;
//  4. the cell must currently be free;
//  5. the seat is tentatively committed (set to occupied and persisted);
//  6. a ticket is synthesized and appended to the user's list, persisted;
//  7. if stage 6 fails for any reason the seat commit is reversed before the
//     error is reported, so occupancy and tickets never diverge as an end
//     state of the attempt.
//
// Returns the created ticket, or ErrNotAuthenticated, store.ErrTrainNotFound
// (wrapped), ErrInvalidInput for bad coordinates, ErrSeatTaken, or a wrapped
// storage error.
func (b *bookingCoordinator) Book(ctx context.Context, userID, trainID string, row, col int) (models.Ticket, error) {
	if userID == "" {
		return models.Ticket{}, ErrNotAuthenticated
	}

	train, err := b.catalog.GetTrain(ctx, trainID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("fetch train: %w", err)
	}

	if !train.SeatInBounds(row, col) {
		return models.Ticket{}, fmt.Errorf("seat (%d, %d) on train %s: %w", row, col, trainID, ErrInvalidInput)
	}

	if train.Seats[row][col] != models.SeatFree {
		return models.Ticket{}, ErrSeatTaken
	}

	if err := b.catalog.SetSeat(ctx, trainID, row, col, models.SeatOccupied); err != nil {
		return models.Ticket{}, fmt.Errorf("occupy seat: %w", err)
	}

	// seat is committed from here on: every failure path below must free it
	// again before returning
	train.Seats[row][col] = models.SeatOccupied
	ticket, err := b.createTicket(ctx, userID, train, row, col)
	if err != nil {
		b.rollbackSeat(ctx, trainID, row, col)
		return models.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	b.logger.Info().
		Str("user_id", userID).
		Str("train_id", trainID).
		Str("ticket_id", ticket.TicketID).
		Int("row", row).
		Int("col", col).
		Msg("seat booked")

	return ticket, nil
}

// Cancel frees the seat referenced by the ticket, then removes the ticket.
//
// The order is stricter than booking on purpose: the seat is freed and
// persisted first, and only a successful seat write allows the ticket
// removal. If freeing fails the ticket stays — seat and ticket remain
// consistent, both still active.
func (b *bookingCoordinator) Cancel(ctx context.Context, userID, ticketID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	if ticketID == "" {
		return ErrInvalidInput
	}

	user, err := b.directory.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}

	ticket, ok := user.FindTicket(ticketID)
	if !ok {
		return ErrTicketNotFound
	}

	if err := b.catalog.SetSeat(ctx, ticket.Train.TrainID, ticket.SeatRow, ticket.SeatColumn, models.SeatFree); err != nil {
		b.logger.Err(err).
			Str("ticket_id", ticketID).
			Str("train_id", ticket.Train.TrainID).
			Msg("seat free failed, ticket retained")
		return fmt.Errorf("free seat: %w", err)
	}

	remaining := make([]models.Ticket, 0, len(user.TicketsBooked)-1)
	for _, t := range user.TicketsBooked {
		if t.TicketID != ticketID {
			remaining = append(remaining, t)
		}
	}

	if err := b.directory.UpdateTickets(ctx, userID, remaining); err != nil {
		// seat already freed; the ticket now points at a free seat, which a
		// re-search recovers from. Surface the error, do not re-occupy.
		return fmt.Errorf("remove ticket: %w", err)
	}

	b.logger.Info().
		Str("user_id", userID).
		Str("ticket_id", ticketID).
		Str("train_id", ticket.Train.TrainID).
		Msg("booking cancelled")

	return nil
}

// Bookings returns the user's current ticket list.
func (b *bookingCoordinator) Bookings(ctx context.Context, userID string) ([]models.Ticket, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := b.directory.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	return user.TicketsBooked, nil
}

// createTicket synthesizes the ticket for a freshly committed seat and
// persists it onto the user's list. train must already reflect the committed
// occupancy, since the ticket embeds it as a snapshot.
func (b *bookingCoordinator) createTicket(ctx context.Context, userID string, train models.Train, row, col int) (models.Ticket, error) {
	user, err := b.directory.FindByID(ctx, userID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("fetch user: %w", err)
	}

	if len(train.Stations) == 0 {
		return models.Ticket{}, fmt.Errorf("train %s has no route: %w", train.TrainID, ErrInvalidInput)
	}

	ticket := models.Ticket{
		TicketID:     "TKT_" + b.uuidGenerator.Generate(),
		UserID:       userID,
		Source:       train.Stations[0],
		Destination:  train.Stations[len(train.Stations)-1],
		DateOfTravel: b.now().AddDate(0, 0, 1).Format("2006-01-02"),
		Train:        train.Clone(),
		SeatRow:      row,
		SeatColumn:   col,
	}

	tickets := append(user.TicketsBooked, ticket)
	if err := b.directory.UpdateTickets(ctx, userID, tickets); err != nil {
		return models.Ticket{}, fmt.Errorf("persist ticket: %w", err)
	}

	return ticket, nil
}

// rollbackSeat is the compensating action for a failed booking: it returns
// the tentatively committed cell to the free state. A rollback failure leaves
// occupancy and tickets divergent, which only an operator can repair, so it
// is logged at error level rather than swallowed.
func (b *bookingCoordinator) rollbackSeat(ctx context.Context, trainID string, row, col int) {
	if err := b.catalog.SetSeat(ctx, trainID, row, col, models.SeatFree); err != nil {
		b.logger.Error().Err(err).
			Str("train_id", trainID).
			Int("row", row).
			Int("col", col).
			Msg("seat rollback failed, grid and tickets may diverge")
	}
}
