package tui

import (
	"context"

	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenDetail
	screenEdit
	screenCreate
	screenSettings
	screenReviews
)

const msgSessionExpired = "Your session has expired, please sign in again"

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	currentScreen screen

	// returnTo is where a cancelled metadata edit goes back to.
	returnTo  screen
	restoring bool

	login     loginModel
	dashboard dashboardModel
	detail    detailModel
	form      projectFormModel
	settings  settingsModel
	reviews   reviewsModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
	serverVersion string
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenLogin,
		restoring:     true,
		login:         newLoginModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdRestore()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.restoring {
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDelete(m.confirm)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case restoreDoneMsg:
		m.restoring = false
		if msg.restored {
			return m.openDashboard()
		}
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case loginDoneMsg:
		if msg.err != nil {
			m.login.submitting = false
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.login.reset("")
		return m.openDashboard()
	case logoutDoneMsg:
		return m.toLogin(""), nil
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		m.dashboard.projects = msg.projects
		m.dashboard.clampIndex()
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.dashboard.stats = msg.stats
		return m, nil
	case projectLoadedMsg:
		if msg.err != nil {
			m.currentScreen = screenDashboard
			return m.handleError(msg.err)
		}
		m.detail = detailModel{
			project:  msg.project,
			videoURL: m.services.ContentService.MediaURL(msg.project.VideoURL),
		}
		if msg.project.Thumbnail != "" {
			m.detail.project.Thumbnail = m.services.ContentService.MediaURL(msg.project.Thumbnail)
		}
		return m, nil
	case projectSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if isSessionLost(msg.err) {
				return m.handleError(msg.err)
			}
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.created {
			m.dashboard.status = "Project created"
		} else {
			m.dashboard.status = "Project updated"
		}
		return m.openDashboard()
	case projectDeletedMsg:
		m.confirm = confirmModel{}
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.dashboard.status = "Project deleted"
		return m.openDashboard()
	case settingsLoadedMsg:
		m.settings = settingsModel{settings: msg.settings}
		if msg.settings.Logo != "" {
			m.settings.logoURL = m.services.ContentService.MediaURL(msg.settings.Logo)
		}
		return m, nil
	case reviewsLoadedMsg:
		m.reviews.loading = false
		m.reviews.items = msg.items
		if m.reviews.idx >= len(m.reviews.items) {
			m.reviews.idx = max(len(m.reviews.items)-1, 0)
		}
		return m, nil
	case reviewDeletedMsg:
		m.confirm = confirmModel{}
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.reviews.status = "Review deleted"
		m.reviews.loading = true
		return m, tea.Batch(m.cmdLoadReviews(), cmdClearStatus())
	case copiedMsg:
		m.detail.errMsg = ""
		m.detail.status = "Video URL copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.detail.errMsg = "copy failed: " + msg.err.Error()
		return m, nil
	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = "unavailable"
			return m, nil
		}
		m.serverVersion = msg.version.Version
		return m, nil
	case clearStatusMsg:
		m.detail.status = ""
		m.dashboard.status = ""
		m.reviews.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEdit, screenCreate:
		return m.updateProjectForm(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenReviews:
		return m.updateReviews(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.restoring {
		return renderPage("REXORA ADMIN", "Checking the saved session...", "")
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var view string
	switch m.currentScreen {
	case screenLogin:
		view = m.login.View()
	case screenDashboard:
		view = m.dashboard.View()
	case screenDetail:
		view = m.detail.View()
	case screenEdit, screenCreate:
		view = m.form.View()
	case screenSettings:
		view = m.settings.View()
	case screenReviews:
		view = m.reviews.View()
	}

	if m.showError {
		return view + "\n\n" + m.errorOverlay.View()
	}
	if m.showConfirm {
		return view + "\n\n" + m.confirm.View()
	}
	return view
}

func (m appModel) openDashboard() (tea.Model, tea.Cmd) {
	m.currentScreen = screenDashboard
	m.dashboard.loading = true
	if m.dashboard.status != "" {
		return m, tea.Batch(m.cmdLoadDashboard(), cmdClearStatus())
	}
	return m, m.cmdLoadDashboard()
}

// toLogin drops every screen state that belongs to the lost session.
func (m appModel) toLogin(errMsg string) appModel {
	m.currentScreen = screenLogin
	m.dashboard = dashboardModel{}
	m.detail = detailModel{}
	m.form = projectFormModel{}
	m.settings = settingsModel{}
	m.reviews = reviewsModel{}
	m.showConfirm = false
	m.showBuildInfo = false
	m.login.reset(errMsg)
	return m
}

// handleError sends the admin back to the login screen when the session is
// gone and shows the error overlay otherwise.
func (m appModel) handleError(err error) (tea.Model, tea.Cmd) {
	if isSessionLost(err) {
		return m.toLogin(msgSessionExpired), nil
	}
	m.showErrorf(humanizeError(err))
	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askDelete(target deleteTarget, id, label string) {
	m.confirm = confirmModel{target: target, id: id, label: label}
	m.showConfirm = true
}
