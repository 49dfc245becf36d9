package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/mock"
	"github.com/localrail/railbook/internal/store"
	"github.com/localrail/railbook/internal/utils"
	"github.com/localrail/railbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newBookingEnv wires a coordinator to real JSON-backed repositories in a temp
// dir and registers one user, so booking flows run end to end through the
// actual persistence path.
func newBookingEnv(t *testing.T) (BookingCoordinator, TrainCatalog, string) {
	t.Helper()
	dir := t.TempDir()

	trainRepo := store.NewTrainRepository(filepath.Join(dir, "trains.json"), logger.Nop())
	userRepo := store.NewUserRepository(filepath.Join(dir, "users.json"), logger.Nop())

	catalog := NewTrainCatalog(trainRepo, logger.Nop())
	directory := NewUserDirectory(userRepo, bcrypt.MinCost, logger.Nop())

	user, err := directory.SignUp(context.Background(), "Ravi", "secret123")
	require.NoError(t, err)

	booking := NewBookingCoordinator(catalog, directory, logger.Nop()).(*bookingCoordinator)
	booking.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	return booking, catalog, user.UserID
}

// countOccupied sums occupied cells across every train in the catalog.
func countOccupied(t *testing.T, catalog TrainCatalog) int {
	t.Helper()
	trains, err := catalog.Search(context.Background(), "Guntur", "Vijayawada")
	require.NoError(t, err)
	reverse, err := catalog.Search(context.Background(), "Vijayawada", "Guntur")
	require.NoError(t, err)

	occupied := 0
	for _, train := range append(trains, reverse...) {
		for _, row := range train.Seats {
			for _, cell := range row {
				if cell != models.SeatFree {
					occupied++
				}
			}
		}
	}
	return occupied
}

// ── Book ─────────────────────────────────────────────────────────────────────

func TestBookingCoordinator_Book_Success(t *testing.T) {
	booking, catalog, userID := newBookingEnv(t)
	ctx := context.Background()

	ticket, err := booking.Book(ctx, userID, "GNT_VZD_001", 1, 2)
	require.NoError(t, err)

	assert.Contains(t, ticket.TicketID, "TKT_")
	assert.Equal(t, userID, ticket.UserID)
	assert.Equal(t, "Guntur", ticket.Source)
	assert.Equal(t, "Vijayawada", ticket.Destination)
	assert.Equal(t, "2026-08-31", ticket.DateOfTravel, "travel date is the day after booking")
	assert.Equal(t, 1, ticket.SeatRow)
	assert.Equal(t, 2, ticket.SeatColumn)
	assert.Equal(t, "GNT_VZD_001", ticket.Train.TrainID)
	assert.Equal(t, models.SeatOccupied, ticket.Train.Seats[1][2], "snapshot reflects the committed seat")

	grid, err := catalog.Seats(ctx, "GNT_VZD_001")
	require.NoError(t, err)
	assert.Equal(t, models.SeatOccupied, grid[1][2])

	tickets, err := booking.Bookings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, ticket.TicketID, tickets[0].TicketID)
}

func TestBookingCoordinator_Book_SeatTaken(t *testing.T) {
	booking, catalog, userID := newBookingEnv(t)
	ctx := context.Background()

	_, err := booking.Book(ctx, userID, "GNT_VZD_001", 0, 0)
	require.NoError(t, err)

	_, err = booking.Book(ctx, userID, "GNT_VZD_001", 0, 0)
	assert.ErrorIs(t, err, ErrSeatTaken)

	// the failed attempt must not disturb the earlier booking
	grid, err := catalog.Seats(ctx, "GNT_VZD_001")
	require.NoError(t, err)
	assert.Equal(t, models.SeatOccupied, grid[0][0])

	tickets, err := booking.Bookings(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestBookingCoordinator_Book_Validation(t *testing.T) {
	booking, _, userID := newBookingEnv(t)
	ctx := context.Background()

	t.Run("not authenticated", func(t *testing.T) {
		_, err := booking.Book(ctx, "", "GNT_VZD_001", 0, 0)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("unknown train", func(t *testing.T) {
		_, err := booking.Book(ctx, userID, "NO_SUCH_TRAIN", 0, 0)
		assert.ErrorIs(t, err, store.ErrTrainNotFound)
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		tests := []struct{ row, col int }{
			{row: -1, col: 0},
			{row: 4, col: 0},
			{row: 0, col: 6},
		}
		for _, tt := range tests {
			_, err := booking.Book(ctx, userID, "GNT_VZD_001", tt.row, tt.col)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestBookingCoordinator_Book_RollsBackSeatWhenTicketPersistFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock.NewMockTrainCatalog(ctrl)
	mockDirectory := mock.NewMockUserDirectory(ctrl)

	booking := &bookingCoordinator{
		catalog:       mockCatalog,
		directory:     mockDirectory,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger.Nop(),
	}

	ctx := context.Background()
	train := store.DefaultTrains()[0]
	storageErr := errors.New("disk full")

	mockCatalog.EXPECT().GetTrain(ctx, "GNT_VZD_001").Return(train.Clone(), nil)
	mockDirectory.EXPECT().FindByID(ctx, "u-1").Return(models.User{UserID: "u-1", Name: "Ravi"}, nil)
	mockDirectory.EXPECT().UpdateTickets(ctx, "u-1", gomock.Any()).Return(storageErr)

	// the seat is committed first; the failed ticket write must trigger the
	// compensating free of the exact same cell
	gomock.InOrder(
		mockCatalog.EXPECT().SetSeat(ctx, "GNT_VZD_001", 1, 2, models.SeatOccupied).Return(nil),
		mockCatalog.EXPECT().SetSeat(ctx, "GNT_VZD_001", 1, 2, models.SeatFree).Return(nil),
	)

	_, err := booking.Book(ctx, "u-1", "GNT_VZD_001", 1, 2)
	assert.ErrorIs(t, err, storageErr)
}

func TestBookingCoordinator_Book_RollsBackSeatWhenUserVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock.NewMockTrainCatalog(ctrl)
	mockDirectory := mock.NewMockUserDirectory(ctrl)

	booking := &bookingCoordinator{
		catalog:       mockCatalog,
		directory:     mockDirectory,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger.Nop(),
	}

	ctx := context.Background()
	train := store.DefaultTrains()[0]

	mockCatalog.EXPECT().GetTrain(ctx, "GNT_VZD_001").Return(train.Clone(), nil)
	mockDirectory.EXPECT().FindByID(ctx, "u-1").Return(models.User{}, store.ErrUserNotFound)

	gomock.InOrder(
		mockCatalog.EXPECT().SetSeat(ctx, "GNT_VZD_001", 0, 0, models.SeatOccupied).Return(nil),
		mockCatalog.EXPECT().SetSeat(ctx, "GNT_VZD_001", 0, 0, models.SeatFree).Return(nil),
	)

	_, err := booking.Book(ctx, "u-1", "GNT_VZD_001", 0, 0)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── Cancel ───────────────────────────────────────────────────────────────────

func TestBookingCoordinator_Cancel_Success(t *testing.T) {
	booking, catalog, userID := newBookingEnv(t)
	ctx := context.Background()

	ticket, err := booking.Book(ctx, userID, "GNT_VZD_001", 2, 4)
	require.NoError(t, err)

	require.NoError(t, booking.Cancel(ctx, userID, ticket.TicketID))

	grid, err := catalog.Seats(ctx, "GNT_VZD_001")
	require.NoError(t, err)
	assert.Equal(t, models.SeatFree, grid[2][4])

	tickets, err := booking.Bookings(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestBookingCoordinator_Cancel_Validation(t *testing.T) {
	booking, _, userID := newBookingEnv(t)
	ctx := context.Background()

	t.Run("not authenticated", func(t *testing.T) {
		err := booking.Cancel(ctx, "", "TKT_whatever")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("blank ticket id", func(t *testing.T) {
		err := booking.Cancel(ctx, userID, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("ticket the user does not own", func(t *testing.T) {
		err := booking.Cancel(ctx, userID, "TKT_not-mine")
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}

func TestBookingCoordinator_Cancel_KeepsTicketWhenSeatFreeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock.NewMockTrainCatalog(ctrl)
	mockDirectory := mock.NewMockUserDirectory(ctrl)

	booking := &bookingCoordinator{
		catalog:       mockCatalog,
		directory:     mockDirectory,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger.Nop(),
	}

	ctx := context.Background()
	ticket := models.Ticket{
		TicketID:   "TKT_1",
		UserID:     "u-1",
		Train:      store.DefaultTrains()[0],
		SeatRow:    1,
		SeatColumn: 2,
	}
	user := models.User{UserID: "u-1", Name: "Ravi", TicketsBooked: []models.Ticket{ticket}}
	storageErr := errors.New("disk full")

	mockDirectory.EXPECT().FindByID(ctx, "u-1").Return(user, nil)
	mockCatalog.EXPECT().SetSeat(ctx, "GNT_VZD_001", 1, 2, models.SeatFree).Return(storageErr)
	// no UpdateTickets expectation: a failed seat free must abort the removal

	err := booking.Cancel(ctx, "u-1", "TKT_1")
	assert.ErrorIs(t, err, storageErr)
}

// ── Occupancy invariant ──────────────────────────────────────────────────────

func TestBookingCoordinator_OccupiedSeatsMatchTickets(t *testing.T) {
	booking, catalog, userID := newBookingEnv(t)
	ctx := context.Background()

	first, err := booking.Book(ctx, userID, "GNT_VZD_001", 0, 0)
	require.NoError(t, err)
	_, err = booking.Book(ctx, userID, "VZD_GNT_002", 3, 5)
	require.NoError(t, err)

	tickets, err := booking.Bookings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, len(tickets), countOccupied(t, catalog))

	require.NoError(t, booking.Cancel(ctx, userID, first.TicketID))

	tickets, err = booking.Bookings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, len(tickets), countOccupied(t, catalog))
}
