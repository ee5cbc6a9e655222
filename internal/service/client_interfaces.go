package service

import (
	"context"

	"github.com/MKhiriev/rexora-cms/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService owns the admin client's [models.Session]. It is the only
// component that reads or writes the persisted token.
type SessionService interface {
	// Login authenticates against the server and persists the token.
	// Failures carry the server message or a generic fallback.
	Login(ctx context.Context, creds models.Credentials) error

	// Restore loads the persisted token and verifies it. A rejected token is
	// discarded silently and false is returned with a nil error.
	Restore(ctx context.Context) (bool, error)

	// Logout discards the token locally.
	Logout(ctx context.Context) error

	// Current returns the session held in memory.
	Current() models.Session

	// Invalidate discards the session when err is [ErrUnauthorized] and
	// returns err unchanged.
	Invalidate(ctx context.Context, err error) error
}

// ContentService is the read-only content fetcher. It needs no session.
// Failures of the list reads are logged and degrade to empty or default
// values.
type ContentService interface {
	ListProjects(ctx context.Context) []models.ProjectSummary
	// GetProject fails with [ErrNotFound] for an unknown id.
	GetProject(ctx context.Context, id string) (models.ProjectDetail, error)
	// GetSiteSettings falls back to [models.DefaultSiteSettings].
	GetSiteSettings(ctx context.Context) models.SiteSettings
	ListReviews(ctx context.Context) []models.Review
	// MediaURL returns an absolute URL for a media reference.
	MediaURL(ref string) string
	// ServerVersion reports the build of the server the client talks to.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}

// AdminService performs the authenticated CRUD actions. Inputs are validated
// locally first; invalid input never reaches the network. An unauthorized
// answer clears the session.
type AdminService interface {
	CreateProject(ctx context.Context, meta models.ProjectMetadata, video models.MediaFile, thumbnail *models.MediaFile) (models.ProjectSummary, error)
	// UpdateProject changes metadata only.
	UpdateProject(ctx context.Context, id string, meta models.ProjectMetadata) error
	DeleteProject(ctx context.Context, id string) error
	GetStats(ctx context.Context) (models.DashboardStats, error)

	// UploadLogo stores a logo and returns its reference without saving the
	// settings document.
	UploadLogo(ctx context.Context, logo models.MediaFile) (string, error)

	// CurrentSiteSettings reads the stored document and its version for an
	// edit. Unlike ContentService.GetSiteSettings it never substitutes the
	// defaults: a failed read is returned so no save is built on top of it.
	CurrentSiteSettings(ctx context.Context) (models.SiteSettings, error)

	// SaveSiteSettings replaces the whole document. When logo is not nil it
	// is uploaded first and its reference is written into the document
	// before the save is sent. The returned document carries the new
	// version.
	SaveSiteSettings(ctx context.Context, s models.SiteSettings, logo *models.MediaFile) (models.SiteSettings, error)

	CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error)
	UpdateReview(ctx context.Context, id string, u models.ReviewUpdate) (models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}
