package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localrail/railbook/models"
)

func (m *rootModel) startSearchForm() {
	source := textinput.New()
	source.Placeholder = "source station"
	source.CharLimit = 64
	source.Focus()

	destination := textinput.New()
	destination.Placeholder = "destination station"
	destination.CharLimit = 64

	m.searchInputs = []textinput.Model{source, destination}
	m.searchFocus = 0
	m.searching = false
	m.screen = screenSearch
}

func (m rootModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		// a new search invalidates the previous selection
		m.selected = nil
		m.results = msg.trains
		m.resultsIdx = 0
		m.screen = screenResults
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.toMenu()
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.searchFocus = (m.searchFocus + 1) % len(m.searchInputs)
			for i := range m.searchInputs {
				if i == m.searchFocus {
					m.searchInputs[i].Focus()
				} else {
					m.searchInputs[i].Blur()
				}
			}
			return m, nil
		case "enter":
			if m.searchFocus < len(m.searchInputs)-1 {
				m.searchInputs[m.searchFocus].Blur()
				m.searchFocus++
				m.searchInputs[m.searchFocus].Focus()
				return m, nil
			}
			m.errMsg = ""
			m.searching = true
			return m, m.cmdSearch(m.searchInputs[0].Value(), m.searchInputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.searchInputs[m.searchFocus], cmd = m.searchInputs[m.searchFocus].Update(msg)
	return m, cmd
}

func (m rootModel) viewSearch() string {
	var b strings.Builder

	b.WriteString("From: " + m.searchInputs[0].View() + "\n")
	b.WriteString("To:   " + m.searchInputs[1].View() + "\n")

	if m.searching {
		b.WriteString("\nSearching...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(
		"SEARCH TRAINS",
		strings.TrimRight(b.String(), "\n"),
		"enter: search │ tab: next field │ esc: back",
	)
}

func (m rootModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.toMenu()
	case "up", "k":
		if m.resultsIdx > 0 {
			m.resultsIdx--
		}
	case "down", "j":
		if m.resultsIdx < len(m.results)-1 {
			m.resultsIdx++
		}
	case "enter":
		if len(m.results) > 0 {
			train := m.results[m.resultsIdx]
			m.selected = &train
			m.status = fmt.Sprintf("Selected train %s (no %d)", train.TrainID, train.TrainNo)
			m.toMenu()
		}
	}

	return m, nil
}

func (m rootModel) viewResults() string {
	var b strings.Builder

	if len(m.results) == 0 {
		b.WriteString("No trains serve that route.\n")
	} else {
		for i, t := range m.results {
			cursor := " "
			if i == m.resultsIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s │ no %d\n", cursor, t.TrainID, t.TrainNo))
			b.WriteString("    " + renderSchedule(t) + "\n")
		}
	}

	return renderPage(
		"SEARCH RESULTS",
		strings.TrimRight(b.String(), "\n"),
		"enter: select for booking │ ↑/↓: navigate │ esc: back",
	)
}

// renderSchedule prints the stops in travel order with their departure times.
func renderSchedule(t models.Train) string {
	stops := make([]string, 0, len(t.Stations))
	for _, station := range t.Stations {
		stops = append(stops, station+" "+t.StationTimes[station])
	}
	return strings.Join(stops, " → ")
}

func (m rootModel) cmdSearch(source, destination string) tea.Cmd {
	return func() tea.Msg {
		trains, err := m.services.Catalog.Search(m.ctx, source, destination)
		return searchDoneMsg{trains: trains, err: err}
	}
}
