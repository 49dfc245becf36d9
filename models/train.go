package models

// Seat occupancy values stored in a train's seat grid.
const (
	SeatFree     = 0
	SeatOccupied = 1
)

// Train represents a scheduled train and the current occupancy of its seats.
// The JSON field names form the on-disk schema of the trains collection file
// and must stay stable; unknown fields on read are ignored.
type Train struct {
	// TrainID is the unique string identifier of the train (e.g. "GNT_VZD_001").
	TrainID string `json:"trainId"`

	// TrainNo is the numeric designator shown to passengers.
	TrainNo int `json:"trainNo"`

	// Seats is the occupancy grid: Seats[row][col] is SeatFree or SeatOccupied.
	// Grid dimensions are fixed for the lifetime of the train.
	Seats [][]int `json:"seats"`

	// StationTimes maps a station name to its scheduled departure time.
	StationTimes map[string]string `json:"stationTimes"`

	// Stations is the ordered route. Order defines the valid travel
	// direction: a source must precede a destination.
	Stations []string `json:"stations"`
}

// SeatInBounds reports whether (row, col) addresses a cell of the seat grid.
func (t Train) SeatInBounds(row, col int) bool {
	if row < 0 || row >= len(t.Seats) {
		return false
	}
	return col >= 0 && col < len(t.Seats[row])
}

// Clone returns a deep copy of the train. Tickets embed train snapshots and
// repositories hand out copies so callers cannot mutate stored state through
// shared slices.
func (t Train) Clone() Train {
	c := t

	if t.Seats != nil {
		c.Seats = make([][]int, len(t.Seats))
		for i, row := range t.Seats {
			c.Seats[i] = append([]int(nil), row...)
		}
	}

	if t.StationTimes != nil {
		c.StationTimes = make(map[string]string, len(t.StationTimes))
		for k, v := range t.StationTimes {
			c.StationTimes[k] = v
		}
	}

	c.Stations = append([]string(nil), t.Stations...)

	return c
}
