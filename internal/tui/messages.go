package tui

import (
	"github.com/MKhiriev/rexora-cms/models"
)

type restoreDoneMsg struct {
	restored bool
	err      error
}

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct{}

type serverVersionMsg struct {
	version models.VersionResponse
	err     error
}

type dashboardLoadedMsg struct {
	projects []models.ProjectSummary
	stats    models.DashboardStats
	err      error
}

type projectLoadedMsg struct {
	project models.ProjectDetail
	err     error
}

type projectSavedMsg struct {
	created bool
	err     error
}

type projectDeletedMsg struct {
	err error
}

type settingsLoadedMsg struct {
	settings models.SiteSettings
}

type reviewsLoadedMsg struct {
	items []models.Review
}

type reviewDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
