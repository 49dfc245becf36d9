package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// startAuthForm prepares the two-field name/password form shared by signup
// and login.
func (m *rootModel) startAuthForm(target screen) {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m.authInputs = []textinput.Model{name, password}
	m.authFocus = 0
	m.authSubmitting = false
	m.screen = target
}

func (m rootModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.authSubmitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		user := msg.user
		m.user = &user
		if msg.signup {
			m.status = "Account created, you are logged in as " + user.Name
		} else {
			m.status = "Logged in as " + user.Name
		}
		m.toMenu()
		return m, nil

	case tea.KeyMsg:
		if m.authSubmitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.toMenu()
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.authFocus = (m.authFocus + 1) % len(m.authInputs)
			for i := range m.authInputs {
				if i == m.authFocus {
					m.authInputs[i].Focus()
				} else {
					m.authInputs[i].Blur()
				}
			}
			return m, nil
		case "enter":
			if m.authFocus < len(m.authInputs)-1 {
				m.authInputs[m.authFocus].Blur()
				m.authFocus++
				m.authInputs[m.authFocus].Focus()
				return m, nil
			}
			name := strings.TrimSpace(m.authInputs[0].Value())
			password := m.authInputs[1].Value()
			m.errMsg = ""
			m.authSubmitting = true
			if m.screen == screenSignup {
				return m, m.cmdSignUp(name, password)
			}
			return m, m.cmdLogin(name, password)
		}
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m rootModel) viewAuth(title string) string {
	var b strings.Builder

	b.WriteString("Name:     " + m.authInputs[0].View() + "\n")
	b.WriteString("Password: " + m.authInputs[1].View() + "\n")

	if m.authSubmitting {
		b.WriteString("\nSubmitting...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"enter: submit │ tab: next field │ esc: back",
	)
}

func (m rootModel) cmdSignUp(name, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.services.Directory.SignUp(m.ctx, name, password)
		return authDoneMsg{user: user, signup: true, err: err}
	}
}

func (m rootModel) cmdLogin(name, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.services.Directory.VerifyCredentials(m.ctx, name, password)
		return authDoneMsg{user: user, err: err}
	}
}
