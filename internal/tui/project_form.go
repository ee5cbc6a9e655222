package tui

import (
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldVideo
	fieldThumbnail
)

var projectFieldLabels = []string{
	"Title      ",
	"Description",
	"Category   ",
	"Video file ",
	"Thumbnail  ",
}

// projectFormModel edits project metadata. For a new project (empty id) it
// also asks for the local paths of the video and the optional thumbnail.
type projectFormModel struct {
	id         string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newProjectFormModel(meta models.ProjectMetadata, id string) projectFormModel {
	newInput := func(placeholder, value string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 48
		in.SetValue(value)
		return in
	}

	inputs := []textinput.Model{
		newInput("Project title", meta.Title, 200),
		newInput("Short description", meta.Description, 2000),
		newInput(models.DefaultProjectCategory, meta.Category, 100),
	}
	if id == "" {
		inputs = append(inputs,
			newInput("/path/to/video.mp4", "", 4096),
			newInput("/path/to/thumbnail.jpg (optional)", "", 4096),
		)
	}
	inputs[0].Focus()

	return projectFormModel{id: id, inputs: inputs}
}

func (m projectFormModel) creating() bool {
	return m.id == ""
}

func (m projectFormModel) metadata() models.ProjectMetadata {
	return models.ProjectMetadata{
		Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Category:    strings.TrimSpace(m.inputs[fieldCategory].Value()),
	}
}

func (m projectFormModel) mediaPaths() (video, thumbnail string) {
	if !m.creating() {
		return "", ""
	}
	return strings.TrimSpace(m.inputs[fieldVideo].Value()), strings.TrimSpace(m.inputs[fieldThumbnail].Value())
}

func (m projectFormModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(projectFieldLabels[i])
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		if m.creating() {
			b.WriteString("\n[Uploading...]")
		} else {
			b.WriteString("\n[Saving...]")
		}
	} else {
		b.WriteString("\n[Save]")
	}
	b.WriteString(statusLine("", m.errMsg))

	title := "EDIT PROJECT"
	if m.creating() {
		title = "NEW PROJECT"
	}
	return renderPage(title, b.String(), "tab: next field │ enter: save │ esc: cancel")
}

func (m appModel) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.submitting {
				return m, nil
			}
			m.currentScreen = m.formReturnScreen()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.inputs[m.form.focus].Blur()
			m.form.focus = focusNext(m.form.focus, len(m.form.inputs))
			m.form.inputs[m.form.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.inputs[m.form.focus].Blur()
			m.form.focus = focusPrev(m.form.focus, len(m.form.inputs))
			m.form.inputs[m.form.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}

			meta := m.form.metadata()
			if meta.Title == "" {
				m.form.errMsg = "Title is required"
				return m, nil
			}

			if !m.form.creating() {
				m.form.errMsg = ""
				m.form.submitting = true
				return m, m.cmdUpdateProject(m.form.id, meta)
			}

			video, thumbnail := m.form.mediaPaths()
			if video == "" {
				m.form.errMsg = "Video file is required"
				return m, nil
			}
			m.form.errMsg = ""
			m.form.submitting = true
			return m, m.cmdCreateProject(meta, video, thumbnail)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) formReturnScreen() screen {
	if m.form.creating() {
		return screenDashboard
	}
	return m.returnTo
}
