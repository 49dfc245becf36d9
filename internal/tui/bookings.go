package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m rootModel) updateBookings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bookingsLoadedMsg:
		m.loadingBookings = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.bookings = msg.tickets
		if m.bookingsIdx >= len(m.bookings) {
			m.bookingsIdx = 0
		}
		return m, nil

	case cancelDoneMsg:
		m.cancelling = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Booking cancelled"
		m.errMsg = ""
		m.loadingBookings = true
		return m, m.cmdLoadBookings()

	case copiedMsg:
		m.status = "Ticket ID copied to clipboard"
		return m, nil

	case tea.KeyMsg:
		if m.loadingBookings || m.cancelling {
			return m, nil
		}
		switch msg.String() {
		case "esc", "q":
			m.toMenu()
		case "up", "k":
			if m.bookingsIdx > 0 {
				m.bookingsIdx--
			}
		case "down", "j":
			if m.bookingsIdx < len(m.bookings)-1 {
				m.bookingsIdx++
			}
		case "c":
			if len(m.bookings) > 0 {
				return m, m.cmdCopyTicketID(m.bookings[m.bookingsIdx].TicketID)
			}
		case "ctrl+d":
			if len(m.bookings) > 0 {
				m.cancelling = true
				m.errMsg = ""
				return m, m.cmdCancel(m.bookings[m.bookingsIdx].TicketID)
			}
		}
	}

	return m, nil
}

func (m rootModel) viewBookings() string {
	var b strings.Builder

	switch {
	case m.loadingBookings:
		b.WriteString("Loading bookings...\n")
	case m.cancelling:
		b.WriteString("Cancelling...\n")
	case len(m.bookings) == 0:
		b.WriteString("You have no bookings yet.\n")
	default:
		for i, t := range m.bookings {
			cursor := " "
			if i == m.bookingsIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, fitText(t.Info(), 76)))
			b.WriteString(fmt.Sprintf("    seat row %d, column %d │ train no %d\n",
				t.SeatRow+1, t.SeatColumn+1, t.Train.TrainNo))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(
		"MY BOOKINGS",
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: navigate │ c: copy ticket ID │ ctrl+d: cancel booking │ esc: back",
	)
}

func (m rootModel) cmdLoadBookings() tea.Cmd {
	return func() tea.Msg {
		tickets, err := m.services.Booking.Bookings(m.ctx, m.sessionUserID())
		return bookingsLoadedMsg{tickets: tickets, err: err}
	}
}

func (m rootModel) cmdCancel(ticketID string) tea.Cmd {
	return func() tea.Msg {
		return cancelDoneMsg{err: m.services.Booking.Cancel(m.ctx, m.sessionUserID(), ticketID)}
	}
}

func (m rootModel) cmdCopyTicketID(ticketID string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(ticketID); err != nil {
			return cancelDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
