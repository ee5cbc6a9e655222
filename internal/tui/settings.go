package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsModel is a read-only overview of the site settings document.
// Editing is done with the settings command of the CLI.
type settingsModel struct {
	settings models.SiteSettings
	logoURL  string
	loading  bool
}

func (m settingsModel) View() string {
	if m.loading {
		return renderPage("SITE SETTINGS", "Loading...", "esc: back")
	}

	s := m.settings
	var b strings.Builder

	b.WriteString("[ HERO ]\n")
	b.WriteString("Logo        : " + valueOrDash(m.logoURL) + "\n")
	b.WriteString("Title       : " + valueOrDash(s.HeroTitle) + "\n")
	b.WriteString("Tagline     : " + valueOrDash(s.HeroTagline) + "\n\n")

	b.WriteString("[ ABOUT ]\n")
	b.WriteString("Title       : " + valueOrDash(s.AboutTitle) + "\n")
	b.WriteString(valueOrDash(s.AboutText1) + "\n")
	b.WriteString(valueOrDash(s.AboutText2) + "\n\n")

	fmt.Fprintf(&b, "[ SERVICES (%d) ]\n", len(s.Services))
	for _, svc := range s.Services {
		fmt.Fprintf(&b, "%s  %s: %s\n", svc.Icon.Glyph(), svc.Title, fitText(svc.Description, 60))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "[ STATS (%d) ]\n", len(s.Stats))
	for _, st := range s.Stats {
		fmt.Fprintf(&b, "%s  %s %s\n", st.Icon, st.Value, st.Label)
	}
	b.WriteString("\n")

	b.WriteString("[ CONTACT ]\n")
	b.WriteString("Instagram   : " + valueOrDash(s.InstagramURL) + "\n")
	b.WriteString("E-mail      : " + valueOrDash(s.ContactEmail) + "\n")
	if s.Version == 0 {
		b.WriteString("\nDefaults shown: the settings were never saved.")
	} else {
		fmt.Fprintf(&b, "\nVersion %d", s.Version)
	}

	return renderPage("SITE SETTINGS", b.String(), "esc: back")
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
	}
	return m, nil
}
