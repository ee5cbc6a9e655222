package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/rexora-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	// Create stores p. ID and CreatedAt must already be set.
	Create(ctx context.Context, p models.Project) error
	// List returns all projects, newest first.
	List(ctx context.Context) ([]models.Project, error)
	// Get returns the project with the given id or [ErrProjectNotFound].
	Get(ctx context.Context, id string) (models.Project, error)
	// UpdateMetadata replaces the editable fields and returns the stored
	// project. Media keys are never touched.
	UpdateMetadata(ctx context.Context, id string, meta models.ProjectMetadata) (models.Project, error)
	// Delete removes the project and returns the deleted row so that its
	// media can be released.
	Delete(ctx context.Context, id string) (models.Project, error)
	// Count returns the number of projects.
	Count(ctx context.Context) (int64, error)
	// CountSince returns the number of projects with created_at >= since.
	CountSince(ctx context.Context, since time.Time) (int64, error)
	// ListMediaKeys returns every media key referenced by a project.
	ListMediaKeys(ctx context.Context) ([]string, error)
}

// SettingsRepository persists the site settings singleton.
type SettingsRepository interface {
	// Get returns the stored document or [ErrSettingsNotFound].
	Get(ctx context.Context) (models.SiteSettings, error)
	// Replace overwrites the document. When expectedVersion is positive and
	// differs from the stored version, [ErrVersionConflict] is returned.
	// The returned document carries the new version.
	Replace(ctx context.Context, s models.SiteSettings, expectedVersion int64) (models.SiteSettings, error)
}

// ReviewRepository persists client reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r models.Review) error
	List(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id string) (models.Review, error)
	Update(ctx context.Context, r models.Review) error
	Delete(ctx context.Context, id string) error
}

// MediaStorage stores uploaded blobs under opaque keys.
type MediaStorage interface {
	// Save streams content into the storage and returns its descriptor.
	// The key is derived from name and is unique per call.
	Save(ctx context.Context, name, contentType string, content io.Reader) (models.StoredMedia, error)
	// Open returns a reader for key. The caller closes it.
	Open(ctx context.Context, key string) (MediaObject, error)
	// Delete removes key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns every stored blob.
	List(ctx context.Context) ([]models.StoredMedia, error)
}

// MediaObject is an opened blob. Bodies of the filesystem driver also
// implement io.Seeker, which lets the transport serve range requests.
type MediaObject struct {
	models.StoredMedia
	Body io.ReadCloser
}

// AttemptStorage counts events per key within fixed windows.
type AttemptStorage interface {
	// Hit records one attempt for key and returns the number of attempts in
	// the current window, including this one.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
	// Reset forgets key.
	Reset(ctx context.Context, key string) error
}
