package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listTitleWidth    = 28
	listCategoryWidth = 14
)

// dashboardModel shows the stats tiles above the project list.
type dashboardModel struct {
	projects []models.ProjectSummary
	stats    models.DashboardStats
	idx      int
	loading  bool
	status   string
	errMsg   string
}

func (m dashboardModel) selected() (models.ProjectSummary, bool) {
	if m.idx < 0 || m.idx >= len(m.projects) {
		return models.ProjectSummary{}, false
	}
	return m.projects[m.idx], true
}

func (m *dashboardModel) clampIndex() {
	if m.idx >= len(m.projects) {
		m.idx = len(m.projects) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total projects: %d   Active services: %d   Added this week: %d\n\n",
		m.stats.TotalProjects, m.stats.ActiveServices, m.stats.RecentProjects)

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.projects) == 0:
		b.WriteString("No projects yet. Press n to add the first one.")
	default:
		fmt.Fprintf(&b, "  %-*s  %-*s  %s\n", listTitleWidth, "Title", listCategoryWidth, "Category", "Created")
		for i, p := range m.projects {
			line := fmt.Sprintf("%-*s  %-*s  %s",
				listTitleWidth, fitText(p.Title, listTitleWidth),
				listCategoryWidth, fitText(p.Category, listCategoryWidth),
				formatDate(p.CreatedAt))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(statusLine(m.status, m.errMsg))

	return renderPage(
		"REXORA ADMIN · PROJECTS",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ e: edit │ d: delete │ s: settings │ r: reviews │ ctrl+r: refresh │ v: about │ l: logout │ q: quit",
	)
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.projects)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		p, ok := m.dashboard.selected()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{loading: true}
		m.currentScreen = screenDetail
		return m, m.cmdLoadProject(p.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newProjectFormModel(models.ProjectMetadata{Category: models.DefaultProjectCategory}, "")
		m.currentScreen = screenCreate
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		p, ok := m.dashboard.selected()
		if !ok {
			return m, nil
		}
		m.form = newProjectFormModel(models.ProjectMetadata{Title: p.Title, Description: p.Description, Category: p.Category}, p.ID)
		m.returnTo = screenDashboard
		m.currentScreen = screenEdit
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		p, ok := m.dashboard.selected()
		if !ok {
			return m, nil
		}
		m.askDelete(deleteProject, p.ID, p.Title)
	case key.Matches(keyMsg, keys.settings):
		m.settings = settingsModel{loading: true}
		m.currentScreen = screenSettings
		return m, m.cmdLoadSettings()
	case key.Matches(keyMsg, keys.reviews):
		m.reviews = reviewsModel{loading: true}
		m.currentScreen = screenReviews
		return m, m.cmdLoadReviews()
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		m.serverVersion = "checking..."
		return m, m.cmdLoadServerVersion()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}
