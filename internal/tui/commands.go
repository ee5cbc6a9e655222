package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

var errUnknownDeleteTarget = errors.New("unknown delete target")

// writeClipboard is replaced in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService

	return func() tea.Msg {
		restored, err := session.Restore(ctx)
		return restoreDoneMsg{restored: restored, err: err}
	}
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService

	return func() tea.Msg {
		return loginDoneMsg{err: session.Login(ctx, creds)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService

	return func() tea.Msg {
		// the in-memory session is gone even if the stored one survives
		_ = session.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	content := m.services.ContentService
	admin := m.services.AdminService

	return func() tea.Msg {
		stats, err := admin.GetStats(ctx)
		return dashboardLoadedMsg{
			projects: content.ListProjects(ctx),
			stats:    stats,
			err:      err,
		}
	}
}

func (m appModel) cmdLoadProject(id string) tea.Cmd {
	ctx := m.ctx
	content := m.services.ContentService

	return func() tea.Msg {
		project, err := content.GetProject(ctx, id)
		return projectLoadedMsg{project: project, err: err}
	}
}

func (m appModel) cmdCreateProject(meta models.ProjectMetadata, videoPath, thumbnailPath string) tea.Cmd {
	ctx := m.ctx
	admin := m.services.AdminService

	return func() tea.Msg {
		video, videoCloser, err := utils.OpenMediaFile(videoPath, models.MediaVideo)
		if err != nil {
			return projectSavedMsg{created: true, err: err}
		}
		defer closeQuietly(videoCloser)

		var thumbnail *models.MediaFile
		if thumbnailPath != "" {
			thumb, thumbCloser, err := utils.OpenMediaFile(thumbnailPath, models.MediaThumbnail)
			if err != nil {
				return projectSavedMsg{created: true, err: err}
			}
			defer closeQuietly(thumbCloser)
			thumbnail = &thumb
		}

		_, err = admin.CreateProject(ctx, meta, video, thumbnail)
		return projectSavedMsg{created: true, err: err}
	}
}

func (m appModel) cmdUpdateProject(id string, meta models.ProjectMetadata) tea.Cmd {
	ctx := m.ctx
	admin := m.services.AdminService

	return func() tea.Msg {
		return projectSavedMsg{err: admin.UpdateProject(ctx, id, meta)}
	}
}

func (m appModel) cmdDelete(target confirmModel) tea.Cmd {
	ctx := m.ctx
	admin := m.services.AdminService

	return func() tea.Msg {
		switch target.target {
		case deleteProject:
			return projectDeletedMsg{err: admin.DeleteProject(ctx, target.id)}
		case deleteReview:
			return reviewDeletedMsg{err: admin.DeleteReview(ctx, target.id)}
		default:
			return projectDeletedMsg{err: fmt.Errorf("%w: %d", errUnknownDeleteTarget, target.target)}
		}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	content := m.services.ContentService

	return func() tea.Msg {
		return settingsLoadedMsg{settings: content.GetSiteSettings(ctx)}
	}
}

func (m appModel) cmdLoadServerVersion() tea.Cmd {
	ctx := m.ctx
	content := m.services.ContentService

	return func() tea.Msg {
		version, err := content.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m appModel) cmdLoadReviews() tea.Cmd {
	ctx := m.ctx
	content := m.services.ContentService

	return func() tea.Msg {
		return reviewsLoadedMsg{items: content.ListReviews(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
