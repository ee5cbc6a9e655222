package tui

import (
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type detailModel struct {
	project  models.ProjectDetail
	videoURL string
	loading  bool
	status   string
	errMsg   string
}

func (m detailModel) View() string {
	if m.loading {
		return renderPage("PROJECT", "Loading...", "esc: back")
	}

	p := m.project
	var b strings.Builder

	b.WriteString("[ PROJECT ]\n")
	b.WriteString("Title       : " + p.Title + "\n")
	b.WriteString("Category    : " + valueOrDash(p.Category) + "\n")
	b.WriteString("Created     : " + formatDate(p.CreatedAt) + "\n\n")

	b.WriteString("[ DESCRIPTION ]\n")
	b.WriteString(valueOrDash(p.Description) + "\n\n")

	b.WriteString("[ MEDIA ]\n")
	b.WriteString("Video       : " + valueOrDash(m.videoURL) + "\n")
	b.WriteString("Thumbnail   : " + valueOrDash(p.Thumbnail))
	b.WriteString(statusLine(m.status, m.errMsg))

	return renderPage("PROJECT: "+p.Title, b.String(), "c: copy video URL │ e: edit │ d: delete │ esc: back")
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenDashboard
		return m, nil
	}
	if m.detail.loading {
		return m, nil
	}

	p := m.detail.project
	switch {
	case key.Matches(keyMsg, keys.copy):
		if m.detail.videoURL == "" {
			m.detail.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.videoURL)
	case key.Matches(keyMsg, keys.edit):
		m.form = newProjectFormModel(models.ProjectMetadata{Title: p.Title, Description: p.Description, Category: p.Category}, p.ID)
		m.returnTo = screenDetail
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(deleteProject, p.ID, p.Title)
	}

	return m, nil
}
