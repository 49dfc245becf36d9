package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localrail/railbook/models"
)

func (m rootModel) updateSeats(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case seatsLoadedMsg:
		m.loadingSeat = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.seats = msg.grid
		m.clampSeatCursor()
		return m, nil

	case bookDoneMsg:
		m.bookingSeat = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = "Booked! " + msg.ticket.Info()
			m.errMsg = ""
		}
		// re-read the grid either way so the view shows current occupancy
		m.loadingSeat = true
		return m, m.cmdLoadSeats(m.selected.TrainID)

	case tea.KeyMsg:
		if m.loadingSeat || m.bookingSeat {
			return m, nil
		}
		switch msg.String() {
		case "esc", "q":
			m.toMenu()
		case "up", "k":
			if m.seatRow > 0 {
				m.seatRow--
			}
		case "down", "j":
			if m.seatRow < len(m.seats)-1 {
				m.seatRow++
			}
		case "left", "h":
			if m.seatCol > 0 {
				m.seatCol--
			}
		case "right", "l":
			if len(m.seats) > 0 && m.seatCol < len(m.seats[m.seatRow])-1 {
				m.seatCol++
			}
		case "r":
			m.loadingSeat = true
			return m, m.cmdLoadSeats(m.selected.TrainID)
		case "enter":
			if len(m.seats) > 0 {
				m.bookingSeat = true
				m.errMsg = ""
				return m, m.cmdBook(m.selected.TrainID, m.seatRow, m.seatCol)
			}
		}
	}

	return m, nil
}

func (m *rootModel) clampSeatCursor() {
	if len(m.seats) == 0 {
		m.seatRow, m.seatCol = 0, 0
		return
	}
	if m.seatRow >= len(m.seats) {
		m.seatRow = len(m.seats) - 1
	}
	if m.seatCol >= len(m.seats[m.seatRow]) {
		m.seatCol = len(m.seats[m.seatRow]) - 1
	}
}

func (m rootModel) viewSeats() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Train %s (no %d)\n\n", m.selected.TrainID, m.selected.TrainNo))

	switch {
	case m.loadingSeat:
		b.WriteString("Loading seats...\n")
	case m.bookingSeat:
		b.WriteString("Booking...\n")
	default:
		for row := range m.seats {
			cells := make([]string, 0, len(m.seats[row]))
			for col, v := range m.seats[row] {
				cell := "o"
				if v != models.SeatFree {
					cell = "x"
				}
				switch {
				case row == m.seatRow && col == m.seatCol:
					cell = "[" + cell + "]"
				case v != models.SeatFree:
					cell = " " + takenStyle.Render(cell) + " "
				default:
					cell = " " + freeStyle.Render(cell) + " "
				}
				cells = append(cells, cell)
			}
			b.WriteString(strings.Join(cells, " ") + "\n")
		}
		b.WriteString("\no: free  x: occupied\n")
		b.WriteString(fmt.Sprintf("Cursor: row %d, column %d\n", m.seatRow+1, m.seatCol+1))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(
		"SEAT MAP",
		strings.TrimRight(b.String(), "\n"),
		"↑/↓/←/→: move │ enter: book seat │ r: refresh │ esc: back",
	)
}

func (m rootModel) cmdLoadSeats(trainID string) tea.Cmd {
	return func() tea.Msg {
		grid, err := m.services.Catalog.Seats(m.ctx, trainID)
		return seatsLoadedMsg{grid: grid, err: err}
	}
}

func (m rootModel) cmdBook(trainID string, row, col int) tea.Cmd {
	return func() tea.Msg {
		ticket, err := m.services.Booking.Book(m.ctx, m.sessionUserID(), trainID, row, col)
		return bookDoneMsg{ticket: ticket, err: err}
	}
}
