package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// menuItems mirrors the numbered command surface: options 1-7.
var menuItems = []string{
	"Sign up",
	"Log in",
	"My bookings",
	"Search trains",
	"Book a seat",
	"Cancel a booking",
	"Exit",
}

func (m rootModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(menuItems)-1 {
			m.menuIdx++
		}
	case "1", "2", "3", "4", "5", "6", "7":
		m.menuIdx = int(key[0] - '1')
		return m.selectMenuItem()
	case "enter":
		return m.selectMenuItem()
	}

	return m, nil
}

func (m rootModel) selectMenuItem() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""

	switch m.menuIdx {
	case 0:
		m.startAuthForm(screenSignup)
	case 1:
		m.startAuthForm(screenLogin)
	case 2, 5: // both land on the bookings screen; cancellation is ctrl+d there
		if !m.loggedIn() {
			m.errMsg = "Please log in first"
			return m, nil
		}
		m.screen = screenBookings
		m.loadingBookings = true
		m.bookingsIdx = 0
		return m, m.cmdLoadBookings()
	case 3:
		m.startSearchForm()
	case 4:
		if !m.loggedIn() {
			m.errMsg = "Please log in first"
			return m, nil
		}
		if m.selected == nil {
			m.errMsg = "Search and select a train first"
			return m, nil
		}
		m.screen = screenSeats
		m.loadingSeat = true
		m.seatRow, m.seatCol = 0, 0
		return m, m.cmdLoadSeats(m.selected.TrainID)
	case 6:
		return m, tea.Quit
	}

	return m, nil
}

func (m rootModel) viewMenu() string {
	var b strings.Builder

	if m.loggedIn() {
		b.WriteString("Logged in as: " + m.user.Name + "\n")
	} else {
		b.WriteString("Not logged in\n")
	}
	if m.selected != nil {
		b.WriteString(fmt.Sprintf("Selected train: %s (no %d)\n", m.selected.TrainID, m.selected.TrainNo))
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage(
		"RAILBOOK — TRAIN BOOKING",
		strings.TrimRight(b.String(), "\n"),
		"1-7/enter: choose │ ↑/↓: navigate │ q: quit",
	)
}
