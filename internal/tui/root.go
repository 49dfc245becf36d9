package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localrail/railbook/internal/service"
	"github.com/localrail/railbook/models"
)

type screen int

const (
	screenMenu screen = iota
	screenSignup
	screenLogin
	screenBookings
	screenSearch
	screenResults
	screenSeats
)

// rootModel is the single Bubble Tea model of the shell. It owns the session
// (current user), the train selected for booking, and the per-screen state.
type rootModel struct {
	ctx      context.Context
	services *service.Services

	screen   screen
	user     *models.User
	selected *models.Train

	status string
	errMsg string

	menuIdx int

	authInputs     []textinput.Model
	authFocus      int
	authSubmitting bool

	bookings        []models.Ticket
	bookingsIdx     int
	loadingBookings bool
	cancelling      bool

	searchInputs []textinput.Model
	searchFocus  int
	searching    bool

	results    []models.Train
	resultsIdx int

	seats       [][]int
	seatRow     int
	seatCol     int
	loadingSeat bool
	bookingSeat bool
}

func newRootModel(ctx context.Context, services *service.Services) rootModel {
	return rootModel{
		ctx:      ctx,
		services: services,
	}
}

func (m rootModel) Init() tea.Cmd {
	return nil
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenSignup, screenLogin:
		return m.updateAuth(msg)
	case screenBookings:
		return m.updateBookings(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenResults:
		return m.updateResults(msg)
	case screenSeats:
		return m.updateSeats(msg)
	default:
		return m, nil
	}
}

func (m rootModel) View() string {
	switch m.screen {
	case screenSignup:
		return m.viewAuth("SIGN UP")
	case screenLogin:
		return m.viewAuth("LOG IN")
	case screenBookings:
		return m.viewBookings()
	case screenSearch:
		return m.viewSearch()
	case screenResults:
		return m.viewResults()
	case screenSeats:
		return m.viewSeats()
	default:
		return m.viewMenu()
	}
}

// toMenu returns to the main menu keeping the session and selection intact.
func (m *rootModel) toMenu() {
	m.screen = screenMenu
	m.errMsg = ""
}

func (m rootModel) loggedIn() bool {
	return m.user != nil && m.user.UserID != ""
}

func (m rootModel) sessionUserID() string {
	if m.user == nil {
		return ""
	}
	return m.user.UserID
}
