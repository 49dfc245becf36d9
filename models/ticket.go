package models

import "fmt"

// Ticket is an issued booking. It embeds a snapshot of the train as it was at
// booking time, not a live reference; the seat coordinates identify the cell
// this ticket occupies in that train's grid.
type Ticket struct {
	TicketID     string `json:"ticketId"`
	UserID       string `json:"userId"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	DateOfTravel string `json:"dateOfTravel"`
	Train        Train  `json:"train"`
	SeatRow      int    `json:"seatRow"`
	SeatColumn   int    `json:"seatColumn"`
}

// Info returns a one-line human-readable summary used by the bookings screen.
func (t Ticket) Info() string {
	return fmt.Sprintf("Ticket %s | %s to %s | %s | Train %s (no %d) | Seat %d-%d",
		t.TicketID, t.Source, t.Destination, t.DateOfTravel,
		t.Train.TrainID, t.Train.TrainNo, t.SeatRow, t.SeatColumn)
}
