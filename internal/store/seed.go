package store

import "github.com/localrail/railbook/models"

const (
	defaultSeatRows = 4
	defaultSeatCols = 6
)

// DefaultTrains returns the seed content of the trains collection: two
// round-trip services between Guntur and Vijayawada with all-free seat grids.
// Written whenever the trains file is missing or unreadable.
func DefaultTrains() []models.Train {
	return []models.Train{
		{
			TrainID: "GNT_VZD_001",
			TrainNo: 11021,
			Seats:   emptySeatGrid(defaultSeatRows, defaultSeatCols),
			StationTimes: map[string]string{
				"Guntur":      "08:00:00",
				"Mangalagiri": "08:25:00",
				"Vijayawada":  "08:45:00",
			},
			Stations: []string{"Guntur", "Mangalagiri", "Vijayawada"},
		},
		{
			TrainID: "VZD_GNT_002",
			TrainNo: 11022,
			Seats:   emptySeatGrid(defaultSeatRows, defaultSeatCols),
			StationTimes: map[string]string{
				"Vijayawada":  "18:00:00",
				"Mangalagiri": "18:20:00",
				"Guntur":      "18:45:00",
			},
			Stations: []string{"Vijayawada", "Mangalagiri", "Guntur"},
		},
	}
}

// DefaultUsers returns the seed content of the users collection: no accounts.
func DefaultUsers() []models.User {
	return []models.User{}
}

func emptySeatGrid(rows, cols int) [][]int {
	grid := make([][]int, rows)
	for i := range grid {
		grid[i] = make([]int, cols)
	}
	return grid
}
