// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel renders the e-mail and password inputs of the sign-in screen.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "admin@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

// reset clears the password and keeps the e-mail for the next attempt.
func (m *loginModel) reset(errMsg string) {
	m.inputs[1].SetValue("")
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = errMsg
}

func (m loginModel) credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("E-mail    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]")
	} else {
		b.WriteString("\n[Sign in]")
	}
	b.WriteString(statusLine("", m.errMsg))

	return renderPage("REXORA ADMIN · SIGN IN", b.String(), "tab: next field │ enter: sign in")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login.inputs[m.login.focus].Blur()
			m.login.focus = focusNext(m.login.focus, len(m.login.inputs))
			m.login.inputs[m.login.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.inputs[m.login.focus].Blur()
			m.login.focus = focusPrev(m.login.focus, len(m.login.inputs))
			m.login.inputs[m.login.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			creds := m.login.credentials()
			if creds.Email == "" || creds.Password == "" {
				m.login.errMsg = "E-mail and password are required"
				return m, nil
			}

			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func focusNext(current, total int) int {
	return (current + 1) % total
}

func focusPrev(current, total int) int {
	return (current - 1 + total) % total
}
