package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrainRepo(t *testing.T) TrainRepository {
	t.Helper()
	return NewTrainRepository(filepath.Join(t.TempDir(), "trains.json"), logger.Nop())
}

func TestTrainRepository_List_SeedsCatalogOnFirstRun(t *testing.T) {
	repo := newTestTrainRepo(t)

	trains, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trains, 2)

	assert.Equal(t, "GNT_VZD_001", trains[0].TrainID)
	assert.Equal(t, 11021, trains[0].TrainNo)
	assert.Equal(t, []string{"Guntur", "Mangalagiri", "Vijayawada"}, trains[0].Stations)
	assert.Equal(t, "08:00:00", trains[0].StationTimes["Guntur"])

	assert.Equal(t, "VZD_GNT_002", trains[1].TrainID)
	assert.Equal(t, []string{"Vijayawada", "Mangalagiri", "Guntur"}, trains[1].Stations)

	for _, train := range trains {
		require.Len(t, train.Seats, 4)
		for _, row := range train.Seats {
			require.Len(t, row, 6)
			for _, cell := range row {
				assert.Equal(t, models.SeatFree, cell)
			}
		}
	}
}

func TestTrainRepository_GetByID(t *testing.T) {
	repo := newTestTrainRepo(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		train, err := repo.GetByID(ctx, "GNT_VZD_001")
		require.NoError(t, err)
		assert.Equal(t, 11021, train.TrainNo)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "NO_SUCH_TRAIN")
		assert.ErrorIs(t, err, ErrTrainNotFound)
	})
}

func TestTrainRepository_GetByID_ReturnsIsolatedCopy(t *testing.T) {
	repo := newTestTrainRepo(t)
	ctx := context.Background()

	train, err := repo.GetByID(ctx, "GNT_VZD_001")
	require.NoError(t, err)

	// mutating the returned value must not leak into subsequent reads
	train.Seats[0][0] = models.SeatOccupied

	fresh, err := repo.GetByID(ctx, "GNT_VZD_001")
	require.NoError(t, err)
	assert.Equal(t, models.SeatFree, fresh.Seats[0][0])
}

func TestTrainRepository_SetSeat(t *testing.T) {
	repo := newTestTrainRepo(t)
	ctx := context.Background()

	t.Run("persists the cell", func(t *testing.T) {
		require.NoError(t, repo.SetSeat(ctx, "GNT_VZD_001", 1, 2, models.SeatOccupied))

		train, err := repo.GetByID(ctx, "GNT_VZD_001")
		require.NoError(t, err)
		assert.Equal(t, models.SeatOccupied, train.Seats[1][2])
	})

	t.Run("frees the cell again", func(t *testing.T) {
		require.NoError(t, repo.SetSeat(ctx, "GNT_VZD_001", 1, 2, models.SeatFree))

		train, err := repo.GetByID(ctx, "GNT_VZD_001")
		require.NoError(t, err)
		assert.Equal(t, models.SeatFree, train.Seats[1][2])
	})

	t.Run("unknown train", func(t *testing.T) {
		err := repo.SetSeat(ctx, "NO_SUCH_TRAIN", 0, 0, models.SeatOccupied)
		assert.ErrorIs(t, err, ErrTrainNotFound)
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		tests := []struct{ row, col int }{
			{row: -1, col: 0},
			{row: 0, col: -1},
			{row: 4, col: 0},
			{row: 0, col: 6},
		}
		for _, tt := range tests {
			err := repo.SetSeat(ctx, "GNT_VZD_001", tt.row, tt.col, models.SeatOccupied)
			assert.ErrorIs(t, err, ErrSeatOutOfRange)
		}
	})
}

func TestTrainRepository_Upsert(t *testing.T) {
	repo := newTestTrainRepo(t)
	ctx := context.Background()

	t.Run("inserts a new train", func(t *testing.T) {
		train := models.Train{
			TrainID:      "HYD_BZA_003",
			TrainNo:      12711,
			Seats:        [][]int{{0, 0}, {0, 0}},
			StationTimes: map[string]string{"Hyderabad": "06:00:00", "Vijayawada": "12:00:00"},
			Stations:     []string{"Hyderabad", "Vijayawada"},
		}
		require.NoError(t, repo.Upsert(ctx, train))

		trains, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, trains, 3)
	})

	t.Run("replaces an existing train", func(t *testing.T) {
		train, err := repo.GetByID(ctx, "GNT_VZD_001")
		require.NoError(t, err)

		train.TrainNo = 99999
		require.NoError(t, repo.Upsert(ctx, train))

		updated, err := repo.GetByID(ctx, "GNT_VZD_001")
		require.NoError(t, err)
		assert.Equal(t, 99999, updated.TrainNo)

		trains, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, trains, 3)
	})
}
