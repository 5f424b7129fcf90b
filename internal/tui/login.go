package tui

import (
	"strings"

	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// signInModel collects the identity for the development sign-in flow: an
// email (required) and a display name (optional). In production the
// identity comes from the OAuth provider instead.
type signInModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string

	identity   models.Identity
	quitByUser bool
	done       bool
}

func newSignInModel() signInModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	name := textinput.New()
	name.Placeholder = "имя (необязательно)"
	name.CharLimit = 100

	return signInModel{inputs: []textinput.Model{email, name}}
}

func (m signInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m signInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if keyMsg.String() == "shift+tab" || keyMsg.String() == "up" {
				m.focus--
			} else {
				m.focus++
			}
			if m.focus < 0 {
				m.focus = len(m.inputs) - 1
			}
			if m.focus >= len(m.inputs) {
				m.focus = 0
			}
			cmds := make([]tea.Cmd, 0, len(m.inputs))
			for i := range m.inputs {
				if i == m.focus {
					cmds = append(cmds, m.inputs[i].Focus())
					continue
				}
				m.inputs[i].Blur()
			}
			return m, tea.Batch(cmds...)

		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.inputs[m.focus].Blur()
				m.focus++
				return m, m.inputs[m.focus].Focus()
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			if email == "" || !strings.Contains(email, "@") {
				m.errMsg = "Укажите корректный email"
				return m, nil
			}

			m.identity = models.Identity{
				Email: email,
				Name:  strings.TrimSpace(m.inputs[1].Value()),
			}
			m.done = true
			return m, tea.Quit
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m signInModel) View() string {
	var b strings.Builder

	b.WriteString("Email:\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString("Имя:\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "enter: продолжить │ tab: следующее поле │ esc: выход")
}
