// Package tui implements the interactive console shell of railbook as a
// Bubble Tea program.
//
// The shell is a single program with one root model that switches between
// screens (menu, signup, login, bookings, search, seat grid). Every call into
// the service layer runs as an asynchronous [tea.Cmd] producing a typed
// result message, so the UI never blocks on disk I/O. Errors surface as page
// text; the program never panics on a failed operation.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/service"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run starts the interactive session and blocks until the user exits.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(ctx, t.services)
	_, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	return err
}
