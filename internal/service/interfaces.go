package service

import (
	"context"

	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates the single admin account and issues tokens.
type AuthService interface {
	// Login checks creds against the configured admin. Attempts are counted
	// per clientIP and rejected with [ErrTooManyAttempts] over the limit.
	Login(ctx context.Context, creds models.Credentials, clientIP string) (models.Token, error)
	// ParseToken validates a raw bearer token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProjectService interface {
	// Create validates and stores the media first, then the project row.
	// thumbnail may be nil.
	Create(ctx context.Context, meta models.ProjectMetadata, video models.MediaFile, thumbnail *models.MediaFile) (models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	// UpdateMetadata edits title, description and category only.
	UpdateMetadata(ctx context.Context, id string, meta models.ProjectMetadata) (models.Project, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	// Get returns the stored document or the defaults with version 0.
	Get(ctx context.Context) (models.SiteSettings, error)
	// Replace overwrites the whole document. A positive ifMatch must equal
	// the stored version.
	Replace(ctx context.Context, s models.SiteSettings, ifMatch int64) (models.SiteSettings, error)
	// UploadLogo stores the logo and returns its reference. The document is
	// not modified.
	UploadLogo(ctx context.Context, logo models.MediaFile) (string, error)
}

type ReviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, in models.ReviewInput) (models.Review, error)
	Update(ctx context.Context, id string, u models.ReviewUpdate) (models.Review, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	// Dashboard never fails. Counters that cannot be read are reported as
	// zero.
	Dashboard(ctx context.Context) models.DashboardStats
}

type MediaService interface {
	// Open returns the stored blob. The caller closes its body.
	Open(ctx context.Context, key string) (store.MediaObject, error)
}

type AppInfoService interface {
	GetVersion(ctx context.Context) models.VersionResponse
}
